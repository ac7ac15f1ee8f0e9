package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromYAML reads a configuration from a YAML file. Omitted fields
// take the command line defaults.
func LoadFromYAML(path string) (*WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var state WizardState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&state)
	return &state, nil
}

// SaveToYAML writes the configuration to a YAML file.
func SaveToYAML(state *WizardState, path string) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// applyDefaults fills omitted fields with the command line defaults.
// The size is left alone: it is required and validated later.
func applyDefaults(state *WizardState) {
	if state.Image.Output == "" {
		state.Image.Output = "gradient.bmp"
	}
	if state.Image.Count == 0 {
		state.Image.Count = 1
	}
	if state.Color.Hue == "" {
		state.Color.Hue = "RANDOM"
	}
	if state.Color.Saturation == "" {
		state.Color.Saturation = "1"
	}
	if state.Color.Brightness == "" {
		state.Color.Brightness = "1"
	}
}
