package wizard

import (
	"testing"

	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/types"
)

func TestNewWizard_DefaultState(t *testing.T) {
	wizard := NewWizard(nil)

	if wizard.state == nil {
		t.Fatal("Expected wizard.state to be initialized")
	}

	// Check default values
	if wizard.state.Image.Size != "512x512" {
		t.Errorf("Expected default size 512x512, got %s", wizard.state.Image.Size)
	}
	if wizard.state.Image.Output != "gradient.bmp" {
		t.Errorf("Expected default output gradient.bmp, got %s", wizard.state.Image.Output)
	}
	if wizard.state.Image.Count != 1 {
		t.Errorf("Expected default count 1, got %d", wizard.state.Image.Count)
	}
	if wizard.state.Color.Hue != "RANDOM" {
		t.Errorf("Expected default hue RANDOM, got %s", wizard.state.Color.Hue)
	}
	if wizard.state.Color.Saturation != "1" {
		t.Errorf("Expected default saturation 1, got %s", wizard.state.Color.Saturation)
	}
	if wizard.state.Color.Brightness != "1" {
		t.Errorf("Expected default brightness 1, got %s", wizard.state.Color.Brightness)
	}

	// Check initial phase
	if wizard.phase != PhaseImage {
		t.Errorf("Expected initial phase PhaseImage, got %v", wizard.phase)
	}
}

func TestNewWizard_WithExistingState(t *testing.T) {
	existingState := &WizardState{
		Image: types.ImageConfig{
			Size:   "3840x2160",
			Output: "/custom/path/wall.png",
			Count:  20,
			Label:  true,
		},
		Color: types.ColorConfig{
			Hue:        "200",
			Saturation: "RANDOM",
			Brightness: "1",
		},
	}

	wizard := NewWizard(existingState)

	if wizard.state != existingState {
		t.Error("Expected wizard to use provided state")
	}
	if wizard.state.Image.Size != "3840x2160" {
		t.Errorf("Expected size 3840x2160, got %s", wizard.state.Image.Size)
	}
	if wizard.state.Image.Count != 20 {
		t.Errorf("Expected count 20, got %d", wizard.state.Image.Count)
	}
	if wizard.state.Color.Saturation != "RANDOM" {
		t.Errorf("Expected saturation RANDOM, got %s", wizard.state.Color.Saturation)
	}
}
