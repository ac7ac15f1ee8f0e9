package wizard

import "github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/types"

// Aliases so callers only need the wizard package.
type (
	WizardState = types.WizardState
	ImageConfig = types.ImageConfig
	ColorConfig = types.ColorConfig
	NoiseConfig = types.NoiseConfig
)

// NewWizardState returns a state pre-filled with the command line
// defaults.
func NewWizardState() *WizardState {
	return &WizardState{
		Image: ImageConfig{
			Size:   "512x512",
			Output: "gradient.bmp",
			Count:  1,
		},
		Color: ColorConfig{
			Hue:        "RANDOM",
			Saturation: "1",
			Brightness: "1",
		},
	}
}
