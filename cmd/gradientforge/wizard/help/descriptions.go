// Package help holds the contextual help texts shown next to wizard
// fields.
package help

// HelpText contains the help content for one form field.
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts maps form field keys to their help content.
var Texts = map[string]HelpText{
	"size": {
		Title:       "Image Size",
		Description: "Dimensions of the generated image in pixels, written as WIDTHxHEIGHT.",
		Details:     "Examples: 512x512, 1920x1080, 3840x2160. Large images take longer to render but the gradient stays equally smooth.",
	},
	"output": {
		Title:       "Output Path",
		Description: "Where the image is written. The extension picks the encoding.",
		Details:     "Supported: .bmp and .png. Anything else is written as BMP. Batches insert a number before the extension (art.bmp becomes art_001.bmp).",
	},
	"count": {
		Title:       "Image Count",
		Description: "How many images to generate in one run.",
		Details:     "Each image in a batch gets its own seed derived from the base seed, so the whole batch reproduces from one seed.",
	},
	"label": {
		Title:       "Image Label",
		Description: "Draw an 'Image X/Y' label in the center of each image.",
		Details:     "White text with a black outline, scaled to about a third of the image width. Useful for telling batch images apart at a glance.",
	},
	"channel": {
		Title:       "Randomized Channel",
		Description: "The HSV channel the noise field drives. The other two stay fixed.",
		Details:     "Hue sweeps through colors at constant intensity. Saturation fades between gray and full color. Brightness fades between black and full color.",
	},
	"hue": {
		Title:       "Hue",
		Description: "Position on the color wheel, in degrees from 0 to just under 360.",
		Details:     "0 is red, 60 yellow, 120 green, 180 cyan, 240 blue, 300 magenta.",
	},
	"saturation": {
		Title:       "Saturation",
		Description: "Color intensity from 0 to 1.",
		Details:     "0 is grayscale, 1 is fully saturated color.",
	},
	"brightness": {
		Title:       "Brightness",
		Description: "Lightness from 0 to 1.",
		Details:     "0 is black regardless of the other channels, 1 is full brightness.",
	},
	"seed": {
		Title:       "Noise Seed",
		Description: "Seed for the gradient noise. The same seed always renders the same image.",
		Details:     "Leave empty to pick one at random. The chosen seed is echoed so you can reproduce the run.",
	},
	"frequency": {
		Title:       "Noise Frequency",
		Description: "Noise cycles per pixel. Controls how busy the gradient is.",
		Details:     "Leave empty for one smooth wash across the image (1 divided by the larger dimension). Try 10x that for a turbulent look.",
	},
}
