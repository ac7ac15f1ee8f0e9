package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/components"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/types"
	"github.com/mrsinham/gradientforge/internal/util"
)

// SummaryAction is the choice made on the summary screen.
type SummaryAction string

const (
	SummaryActionGenerate   SummaryAction = "generate"
	SummaryActionSaveConfig SummaryAction = "save_config"
	SummaryActionBack       SummaryAction = "back"
	SummaryActionCancel     SummaryAction = "cancel"
)

var summaryCommandStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("236")).
	Foreground(lipgloss.Color("252")).
	Padding(0, 1)

// SummaryScreen shows all collected parameters and asks what to do
// with them.
type SummaryScreen struct {
	form      *huh.Form
	state     *types.WizardState
	width     int
	height    int
	done      bool
	cancelled bool

	action string
}

// NewSummaryScreen creates the summary screen for the given state.
func NewSummaryScreen(state *types.WizardState) *SummaryScreen {
	s := &SummaryScreen{
		state:  state,
		action: string(SummaryActionGenerate),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Ready to generate?").
				Options(
					huh.NewOption("Generate images", string(SummaryActionGenerate)),
					huh.NewOption("Save configuration to YAML", string(SummaryActionSaveConfig)),
					huh.NewOption("Start over", string(SummaryActionBack)),
					huh.NewOption("Cancel", string(SummaryActionCancel)),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model.
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model.
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("GRADIENTFORGE WIZARD - Summary")
	command := summaryCommandStyle.Render(s.buildCLICommand())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		components.SubtitleStyle.Render("Parameters:"),
		s.buildParameterSummary(),
		components.SubtitleStyle.Render("Equivalent command:"),
		"  "+command,
		"",
		s.form.View(),
		"",
		components.HintStyle.Render("Enter: Confirm | Esc: Cancel"),
	)
}

// buildParameterSummary renders one label/value row per parameter.
func (s *SummaryScreen) buildParameterSummary() string {
	seed := "picked at random"
	if s.state.Noise.Seed != 0 {
		seed = fmt.Sprintf("%d", s.state.Noise.Seed)
	}
	frequency := "1/max(width, height)"
	if s.state.Noise.Frequency != 0 {
		frequency = util.FormatFloat32(s.state.Noise.Frequency)
	}
	label := "no"
	if s.state.Image.Label {
		label = "yes"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Size", s.state.Image.Size},
		{"Output", s.state.Image.Output},
		{"Count", fmt.Sprintf("%d", s.state.Image.Count)},
		{"Label", label},
		{"Hue", s.state.Color.Hue},
		{"Saturation", s.state.Color.Saturation},
		{"Brightness", s.state.Color.Brightness},
		{"Seed", seed},
		{"Frequency", frequency},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString("  ")
		sb.WriteString(components.LabelStyle.Render(fmt.Sprintf("%-12s", row.label+":")))
		sb.WriteString(components.ValueStyle.Render(row.value))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildCLICommand assembles the command line that reproduces this
// configuration without the wizard.
func (s *SummaryScreen) buildCLICommand() string {
	parts := []string{"gradientforge"}
	parts = append(parts, "--size", s.state.Image.Size)
	parts = append(parts, "--hue", s.state.Color.Hue)
	parts = append(parts, "--saturation", s.state.Color.Saturation)
	parts = append(parts, "--brightness", s.state.Color.Brightness)
	if s.state.Noise.Seed != 0 {
		parts = append(parts, "--seed", fmt.Sprintf("%d", s.state.Noise.Seed))
	}
	if s.state.Noise.Frequency != 0 {
		parts = append(parts, "--frequency", util.FormatFloat32(s.state.Noise.Frequency))
	}
	if s.state.Image.Count > 1 {
		parts = append(parts, "--count", fmt.Sprintf("%d", s.state.Image.Count))
	}
	if s.state.Image.Label {
		parts = append(parts, "--label")
	}
	parts = append(parts, "--output", s.state.Image.Output)

	return strings.Join(parts, " ")
}

// Done returns true if an action was chosen.
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled.
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the chosen action.
func (s *SummaryScreen) Action() SummaryAction {
	return SummaryAction(s.action)
}
