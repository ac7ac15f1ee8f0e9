package wizard

import (
	"strings"
	"testing"

	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/types"
	"github.com/mrsinham/gradientforge/internal/gradient"
	"github.com/mrsinham/gradientforge/internal/render"
)

func TestToOptions_BasicConversion(t *testing.T) {
	state := &WizardState{
		Image: types.ImageConfig{
			Size:   "512x256",
			Output: "/output/dir/gradient.bmp",
			Count:  4,
			Label:  true,
		},
		Color: types.ColorConfig{
			Hue:        "RANDOM",
			Saturation: "0.8",
			Brightness: "1",
		},
		Noise: types.NoiseConfig{
			Seed:      12345,
			Frequency: 0.25,
		},
	}

	opts, err := ToOptions(state)
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}

	// Verify image fields
	if opts.Size.Width != 512 || opts.Size.Height != 256 {
		t.Errorf("Expected size 512x256, got %s", opts.Size)
	}
	if opts.Output != "/output/dir/gradient.bmp" {
		t.Errorf("Expected output /output/dir/gradient.bmp, got %s", opts.Output)
	}
	if opts.Count != 4 {
		t.Errorf("Expected count 4, got %d", opts.Count)
	}
	if !opts.Label {
		t.Error("Expected label true, got false")
	}

	// Verify pixel init
	if opts.Init.Randomized() != gradient.Hue {
		t.Errorf("Expected randomized channel hue, got %s", opts.Init.Randomized())
	}
	if v, ok := opts.Init.FixedValue(gradient.Saturation); !ok || v != 0.8 {
		t.Errorf("Expected fixed saturation 0.8, got %v (ok=%v)", v, ok)
	}
	if v, ok := opts.Init.FixedValue(gradient.Brightness); !ok || v != 1 {
		t.Errorf("Expected fixed brightness 1, got %v (ok=%v)", v, ok)
	}
	if _, ok := opts.Init.FixedValue(gradient.Hue); ok {
		t.Error("Expected hue to have no fixed value")
	}

	// Verify noise fields are kept verbatim when set
	if opts.Noise.Seed != 12345 {
		t.Errorf("Expected seed 12345, got %d", opts.Noise.Seed)
	}
	if opts.Noise.Frequency != 0.25 {
		t.Errorf("Expected frequency 0.25, got %g", opts.Noise.Frequency)
	}
}

func TestToOptions_InvalidSize(t *testing.T) {
	state := NewWizardState()
	state.Image.Size = "not-a-size"

	_, err := ToOptions(state)
	if err == nil {
		t.Fatal("Expected error for invalid size, got nil")
	}
	if !strings.Contains(err.Error(), "invalid size") {
		t.Errorf("Expected size error, got: %v", err)
	}
}

func TestToOptions_InvalidColorValue(t *testing.T) {
	state := NewWizardState()
	state.Color.Saturation = "very saturated"

	_, err := ToOptions(state)
	if err == nil {
		t.Fatal("Expected error for invalid color value, got nil")
	}
	if !strings.Contains(err.Error(), "saturation:") {
		t.Errorf("Expected error naming the saturation component, got: %v", err)
	}
}

func TestToOptions_RequiresExactlyOneRandom(t *testing.T) {
	tests := []struct {
		name        string
		hue         string
		saturation  string
		brightness  string
		randomCount int
	}{
		{"none random", "180", "1", "1", 0},
		{"two random", "RANDOM", "RANDOM", "1", 2},
		{"all random", "RANDOM", "RANDOM", "RANDOM", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewWizardState()
			state.Color.Hue = tt.hue
			state.Color.Saturation = tt.saturation
			state.Color.Brightness = tt.brightness

			_, err := ToOptions(state)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), "exactly one of") {
				t.Errorf("Expected exactly-one error, got: %v", err)
			}
		})
	}
}

func TestToOptions_ZeroSeedDrawsRandom(t *testing.T) {
	state := NewWizardState()
	state.Noise.Seed = 0

	// A drawn seed of zero would be re-randomized when the saved
	// config is replayed, so the draw must never land on zero.
	for i := 0; i < 100; i++ {
		opts, err := ToOptions(state)
		if err != nil {
			t.Fatalf("ToOptions failed: %v", err)
		}
		if opts.Noise.Seed == 0 {
			t.Fatal("Expected zero seed to be replaced with a non-zero drawn one")
		}
	}
}

func TestToOptions_ZeroFrequencyUsesLargerDimension(t *testing.T) {
	tests := []struct {
		name     string
		size     string
		expected float32
	}{
		{"landscape", "512x256", 1.0 / 512},
		{"portrait", "200x800", 1.0 / 800},
		{"square", "100x100", 1.0 / 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewWizardState()
			state.Image.Size = tt.size
			state.Noise.Frequency = 0

			opts, err := ToOptions(state)
			if err != nil {
				t.Fatalf("ToOptions failed: %v", err)
			}
			if opts.Noise.Frequency != tt.expected {
				t.Errorf("Expected frequency %g, got %g", tt.expected, opts.Noise.Frequency)
			}
		})
	}
}

func TestToOptions_ZeroCountDefaultsToOne(t *testing.T) {
	state := NewWizardState()
	state.Image.Count = 0

	opts, err := ToOptions(state)
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}
	if opts.Count != 1 {
		t.Errorf("Expected count 1, got %d", opts.Count)
	}
}

func TestFromOptions_RandomChannelMapsBack(t *testing.T) {
	tests := []struct {
		name       string
		init       gradient.PixelInit
		hue        string
		saturation string
		brightness string
	}{
		{"hue random", gradient.RandomizeHue(0.8, 0.9), "RANDOM", "0.8", "0.9"},
		{"saturation random", gradient.RandomizeSaturation(120, 0.9), "120", "RANDOM", "0.9"},
		{"brightness random", gradient.RandomizeBrightness(240, 0.5), "240", "0.5", "RANDOM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := render.Options{
				Size:   gradient.Size{Width: 64, Height: 64},
				Init:   tt.init,
				Noise:  gradient.NoiseOptions{Seed: 7, Frequency: 0.1},
				Output: "out.bmp",
				Count:  1,
			}

			state := FromOptions(opts)
			if state.Color.Hue != tt.hue {
				t.Errorf("Expected hue %s, got %s", tt.hue, state.Color.Hue)
			}
			if state.Color.Saturation != tt.saturation {
				t.Errorf("Expected saturation %s, got %s", tt.saturation, state.Color.Saturation)
			}
			if state.Color.Brightness != tt.brightness {
				t.Errorf("Expected brightness %s, got %s", tt.brightness, state.Color.Brightness)
			}
		})
	}
}

func TestFromOptions_CarriesResolvedDefaults(t *testing.T) {
	state := NewWizardState()
	state.Image.Size = "640x480"
	state.Noise.Seed = 0      // resolved to a drawn seed
	state.Noise.Frequency = 0 // resolved to 1/640

	opts, err := ToOptions(state)
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}

	echoed := FromOptions(opts)

	// The echoed state holds the resolved values, so saving it
	// reproduces this exact run.
	if echoed.Noise.Seed != opts.Noise.Seed {
		t.Errorf("Expected seed %d, got %d", opts.Noise.Seed, echoed.Noise.Seed)
	}
	if echoed.Noise.Frequency != 1.0/640 {
		t.Errorf("Expected frequency %g, got %g", 1.0/640, echoed.Noise.Frequency)
	}
	if echoed.Image.Size != "640x480" {
		t.Errorf("Expected size 640x480, got %s", echoed.Image.Size)
	}
	if echoed.Image.Count != 1 {
		t.Errorf("Expected count 1, got %d", echoed.Image.Count)
	}
}

func TestToOptions_FromOptions_RoundTrip(t *testing.T) {
	state := &WizardState{
		Image: types.ImageConfig{
			Size:   "320x240",
			Output: "batch.png",
			Count:  3,
			Label:  true,
		},
		Color: types.ColorConfig{
			Hue:        "15",
			Saturation: "RANDOM",
			Brightness: "0.75",
		},
		Noise: types.NoiseConfig{
			Seed:      -42,
			Frequency: 0.0625,
		},
	}

	opts, err := ToOptions(state)
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}

	echoed := FromOptions(opts)

	opts2, err := ToOptions(echoed)
	if err != nil {
		t.Fatalf("ToOptions on echoed state failed: %v", err)
	}

	if opts2.Size != opts.Size {
		t.Errorf("Size mismatch: %s vs %s", opts.Size, opts2.Size)
	}
	if opts2.Init != opts.Init {
		t.Errorf("Init mismatch: %+v vs %+v", opts.Init, opts2.Init)
	}
	if opts2.Noise != opts.Noise {
		t.Errorf("Noise mismatch: %+v vs %+v", opts.Noise, opts2.Noise)
	}
	if opts2.Output != opts.Output || opts2.Count != opts.Count || opts2.Label != opts.Label {
		t.Errorf("Output parameters mismatch: %+v vs %+v", opts, opts2)
	}
}
