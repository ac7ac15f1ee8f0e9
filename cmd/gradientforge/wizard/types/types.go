// Package types holds the wizard's configuration schema. It lives in
// its own package so the orchestrator and the screens can share it.
package types

// ImageConfig holds the output parameters.
type ImageConfig struct {
	Size   string `yaml:"size"`
	Output string `yaml:"output"`
	Count  int    `yaml:"count"`
	Label  bool   `yaml:"label"`
}

// ColorConfig holds the three HSV component arguments in the same
// form the command line accepts them: a number or RANDOM. Exactly one
// must be RANDOM.
type ColorConfig struct {
	Hue        string `yaml:"hue"`
	Saturation string `yaml:"saturation"`
	Brightness string `yaml:"brightness"`
}

// NoiseConfig holds the noise parameters. Zero values pick the
// defaults: a random seed and one noise cycle across the larger image
// dimension.
type NoiseConfig struct {
	Seed      int32   `yaml:"seed"`
	Frequency float32 `yaml:"frequency"`
}

// WizardState carries the full configuration collected across the
// wizard screens. It doubles as the YAML config schema.
type WizardState struct {
	Image ImageConfig `yaml:"image"`
	Color ColorConfig `yaml:"color"`
	Noise NoiseConfig `yaml:"noise"`
}
