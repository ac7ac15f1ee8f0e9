// Package gradient renders images by driving a single HSV component
// per pixel from a 2-D gradient-noise field and converting the result
// to RGB.
package gradient

import (
	"image"

	"github.com/mrsinham/gradientforge/internal/noise"
)

// NoiseOptions parameterizes the noise field backing an image.
type NoiseOptions struct {
	// Seed selects the noise permutation. Equal seeds reproduce the
	// exact same field.
	Seed int32
	// Frequency is the number of noise cycles per pixel. Values around
	// 1/max(width, height) give one smooth gradient across the image;
	// higher values give busier output.
	Frequency float32
}

// GenerateImage renders an RGBA image of the given size. The channel
// selected by init varies per pixel with the noise field; the two
// remaining channels are fixed at init's values.
//
// The noise field is scaled into the randomized channel's valid range
// before conversion, so errors can only come from the fixed values.
// The first failed conversion aborts the render with no partial
// image. A zero-area size yields an empty image and no error.
// Identical arguments always render identical pixels.
func GenerateImage(size Size, init PixelInit, opts NoiseOptions) (*image.RGBA, error) {
	width := int(size.Width)
	height := int(size.Height)

	min, max := init.ValidRange()
	field := noise.ScaledField(width, height, opts.Frequency, opts.Seed, min, max)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			hue, saturation, brightness := init.merge(field[width*y+x])
			px, err := HSVToRGB(hue, saturation, brightness)
			if err != nil {
				return nil, err
			}

			offset := y*img.Stride + x*4
			img.Pix[offset] = px.R
			img.Pix[offset+1] = px.G
			img.Pix[offset+2] = px.B
			img.Pix[offset+3] = 0xff
		}
	}

	return img, nil
}
