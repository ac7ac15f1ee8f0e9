package wizard

import (
	"fmt"

	"github.com/mrsinham/gradientforge/internal/gradient"
	"github.com/mrsinham/gradientforge/internal/render"
	"github.com/mrsinham/gradientforge/internal/util"
)

// ToOptions converts a WizardState into render options, applying the
// same defaulting the command line flags use: a zero seed draws a
// random one, a zero frequency becomes one cycle across the larger
// image dimension.
func ToOptions(state *WizardState) (render.Options, error) {
	size, err := gradient.ParseSize(state.Image.Size)
	if err != nil {
		return render.Options{}, err
	}

	hue, err := util.ParseColorValue(state.Color.Hue)
	if err != nil {
		return render.Options{}, fmt.Errorf("hue: %w", err)
	}
	saturation, err := util.ParseColorValue(state.Color.Saturation)
	if err != nil {
		return render.Options{}, fmt.Errorf("saturation: %w", err)
	}
	brightness, err := util.ParseColorValue(state.Color.Brightness)
	if err != nil {
		return render.Options{}, fmt.Errorf("brightness: %w", err)
	}

	randomCount := 0
	for _, v := range []util.ColorValue{hue, saturation, brightness} {
		if v.Random {
			randomCount++
		}
	}
	if randomCount != 1 {
		return render.Options{}, fmt.Errorf("exactly one of hue, saturation, brightness must be %s (got %d)",
			util.RandomString, randomCount)
	}

	seed := state.Noise.Seed
	if seed == 0 {
		seed = util.RandomSeed()
	}

	frequency := state.Noise.Frequency
	if frequency == 0 {
		magnitude := size.Width
		if size.Height > magnitude {
			magnitude = size.Height
		}
		frequency = 1 / float32(magnitude)
	}

	count := state.Image.Count
	if count == 0 {
		count = 1
	}

	return render.Options{
		Size:   size,
		Init:   gradient.NewPixelInit(hue.Ptr(), saturation.Ptr(), brightness.Ptr()),
		Noise:  gradient.NoiseOptions{Seed: seed, Frequency: frequency},
		Output: state.Image.Output,
		Count:  count,
		Label:  state.Image.Label,
	}, nil
}

// FromOptions converts resolved render options back into a state. The
// result carries concrete values for everything the defaulting
// resolved, so saving it reproduces this exact run.
func FromOptions(opts render.Options) *WizardState {
	hue := util.ColorValue{Random: true}
	saturation := util.ColorValue{Random: true}
	brightness := util.ColorValue{Random: true}

	if v, ok := opts.Init.FixedValue(gradient.Hue); ok {
		hue = util.ColorValue{Value: v}
	}
	if v, ok := opts.Init.FixedValue(gradient.Saturation); ok {
		saturation = util.ColorValue{Value: v}
	}
	if v, ok := opts.Init.FixedValue(gradient.Brightness); ok {
		brightness = util.ColorValue{Value: v}
	}

	count := opts.Count
	if count == 0 {
		count = 1
	}

	return &WizardState{
		Image: ImageConfig{
			Size:   opts.Size.String(),
			Output: opts.Output,
			Count:  count,
			Label:  opts.Label,
		},
		Color: ColorConfig{
			Hue:        hue.String(),
			Saturation: saturation.String(),
			Brightness: brightness.String(),
		},
		Noise: NoiseConfig{
			Seed:      opts.Noise.Seed,
			Frequency: opts.Noise.Frequency,
		},
	}
}
