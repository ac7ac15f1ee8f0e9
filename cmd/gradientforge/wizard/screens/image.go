// Package screens contains the wizard's individual screens, one tea
// model per configuration step.
package screens

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/components"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/types"
	"github.com/mrsinham/gradientforge/internal/gradient"
	"github.com/mrsinham/gradientforge/internal/render"
)

// ImageScreen collects the output parameters: size, path, count and
// labeling.
type ImageScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.ImageConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String version for form binding (huh binds to strings)
	countStr string
}

// NewImageScreen creates the image configuration screen.
func NewImageScreen(config *types.ImageConfig) *ImageScreen {
	if config.Size == "" {
		config.Size = "512x512"
	}
	if config.Output == "" {
		config.Output = "gradient.bmp"
	}
	if config.Count == 0 {
		config.Count = 1
	}

	s := &ImageScreen{
		helpPanel: components.NewHelpPanel(),
		config:    config,
		countStr:  strconv.Itoa(config.Count),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("size").
				Title("Image Size").
				Placeholder("e.g., 512x512").
				Value(&config.Size).
				Validate(validateImageSize),

			huh.NewInput().
				Key("output").
				Title("Output Path").
				Value(&config.Output).
				Validate(validateOutputPath),

			huh.NewInput().
				Key("count").
				Title("Image Count").
				Value(&s.countStr).
				Validate(validatePositiveInt),

			huh.NewConfirm().
				Key("label").
				Title("Label Images").
				Affirmative("Yes").
				Negative("No").
				Value(&config.Label),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateImageSize(s string) error {
	_, err := gradient.ParseSize(s)
	return err
}

func validateOutputPath(s string) error {
	if s == "" {
		return fmt.Errorf("output path is required")
	}
	if ext := filepath.Ext(s); ext != "" {
		if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err != nil {
			exts := make([]string, len(render.AllFormats()))
			for i, f := range render.AllFormats() {
				exts[i] = "." + string(f)
			}
			return fmt.Errorf("unsupported extension %s (supported: %s)", ext, strings.Join(exts, ", "))
		}
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

// Init implements tea.Model.
func (s *ImageScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *ImageScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncConfigFromForm()
	}

	return s, cmd
}

// syncConfigFromForm parses form values back to the config.
func (s *ImageScreen) syncConfigFromForm() {
	if n, err := strconv.Atoi(s.countStr); err == nil {
		s.config.Count = n
	}
}

// View implements tea.Model.
func (s *ImageScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("GRADIENTFORGE WIZARD - Image")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.HintStyle.Render("Tab: Next field | Enter: Submit | Esc: Cancel"),
	)
}

// Done returns true if the form was completed.
func (s *ImageScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled.
func (s *ImageScreen) Cancelled() bool {
	return s.cancelled
}
