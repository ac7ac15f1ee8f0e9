package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/components"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/types"
	"github.com/mrsinham/gradientforge/internal/util"
)

// NoiseScreen collects the noise seed and frequency. Both are optional
// and default to a random seed and one cycle across the larger image
// dimension.
type NoiseScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.NoiseConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	seedStr      string
	frequencyStr string
}

// NewNoiseScreen creates the noise configuration screen.
func NewNoiseScreen(config *types.NoiseConfig) *NoiseScreen {
	s := &NoiseScreen{
		helpPanel: components.NewHelpPanel(),
		config:    config,
	}
	if config.Seed != 0 {
		s.seedStr = strconv.FormatInt(int64(config.Seed), 10)
	}
	if config.Frequency != 0 {
		s.frequencyStr = util.FormatFloat32(config.Frequency)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("seed").
				Title("Seed").
				Placeholder("empty = picked at random").
				Value(&s.seedStr).
				Validate(validateOptionalInt32),

			huh.NewInput().
				Key("frequency").
				Title("Frequency").
				Placeholder("empty = 1/max(width, height)").
				Value(&s.frequencyStr).
				Validate(validateOptionalFloat),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateOptionalInt32(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 32); err != nil {
		return fmt.Errorf("must be a 32-bit integer")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 32); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

// Init implements tea.Model.
func (s *NoiseScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *NoiseScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// syncConfigFromForm parses the optional inputs back to the config;
// empty inputs leave the zero values that select the defaults.
func (s *NoiseScreen) syncConfigFromForm() {
	s.config.Seed = 0
	if n, err := strconv.ParseInt(s.seedStr, 10, 32); err == nil {
		s.config.Seed = int32(n)
	}

	s.config.Frequency = 0
	if f, err := strconv.ParseFloat(s.frequencyStr, 32); err == nil {
		s.config.Frequency = float32(f)
	}
}

// View implements tea.Model.
func (s *NoiseScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("GRADIENTFORGE WIZARD - Noise")

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
func (s *NoiseScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled.
func (s *NoiseScreen) Cancelled() bool {
	return s.cancelled
}
