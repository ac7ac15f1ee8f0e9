package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/components"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/types"
	"github.com/mrsinham/gradientforge/internal/gradient"
	"github.com/mrsinham/gradientforge/internal/util"
)

// ChannelScreen asks which HSV channel the noise field should drive.
type ChannelScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.ColorConfig
	width     int
	height    int
	done      bool
	cancelled bool

	choice string
}

// NewChannelScreen creates the channel selection screen.
func NewChannelScreen(config *types.ColorConfig) *ChannelScreen {
	choice := gradient.Hue.String()
	switch {
	case isRandomValue(config.Saturation):
		choice = gradient.Saturation.String()
	case isRandomValue(config.Brightness):
		choice = gradient.Brightness.String()
	}

	s := &ChannelScreen{
		helpPanel: components.NewHelpPanel(),
		config:    config,
		choice:    choice,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("channel").
				Title("Randomized Channel").
				Description("The noise field drives this channel; the other two stay fixed").
				Options(
					huh.NewOption("Hue - colors wash across the image", "hue"),
					huh.NewOption("Saturation - color fades in and out", "saturation"),
					huh.NewOption("Brightness - light fades in and out", "brightness"),
				).
				Value(&s.choice),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func isRandomValue(s string) bool {
	v, err := util.ParseColorValue(s)
	return err == nil && v.Random
}

// Init implements tea.Model.
func (s *ChannelScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *ChannelScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// syncConfigFromForm marks the chosen channel RANDOM and gives any
// channel that just stopped being randomized a sensible fixed value.
func (s *ChannelScreen) syncConfigFromForm() {
	// The select only offers valid channel names.
	chosen, _ := gradient.ParseChannel(s.choice)

	set := func(field *string, c gradient.Channel, fallback string) {
		switch {
		case c == chosen:
			*field = util.RandomString
		case isRandomValue(*field) || *field == "":
			*field = fallback
		}
	}

	set(&s.config.Hue, gradient.Hue, "0")
	set(&s.config.Saturation, gradient.Saturation, "1")
	set(&s.config.Brightness, gradient.Brightness, "1")
}

// View implements tea.Model.
func (s *ChannelScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("GRADIENTFORGE WIZARD - Color")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.HintStyle.Render("Enter: Select | Esc: Cancel"),
	)
}

// Done returns true if the form was completed.
func (s *ChannelScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled.
func (s *ChannelScreen) Cancelled() bool {
	return s.cancelled
}

// FixedScreen collects values for the two channels the noise field
// does not drive. It must be constructed after the channel choice.
type FixedScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.ColorConfig
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewFixedScreen creates the fixed value screen for the two
// non-randomized channels.
func NewFixedScreen(config *types.ColorConfig) *FixedScreen {
	s := &FixedScreen{
		helpPanel: components.NewHelpPanel(),
		config:    config,
	}

	var fields []huh.Field
	if !isRandomValue(config.Hue) {
		fields = append(fields, huh.NewInput().
			Key("hue").
			Title("Hue (degrees)").
			Placeholder("0 to 359.99").
			Value(&config.Hue).
			Validate(validateHue))
	}
	if !isRandomValue(config.Saturation) {
		fields = append(fields, huh.NewInput().
			Key("saturation").
			Title("Saturation").
			Placeholder("0 to 1").
			Value(&config.Saturation).
			Validate(validateFraction))
	}
	if !isRandomValue(config.Brightness) {
		fields = append(fields, huh.NewInput().
			Key("brightness").
			Title("Brightness").
			Placeholder("0 to 1").
			Value(&config.Brightness).
			Validate(validateFraction))
	}

	s.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateHue(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 || v >= 360 {
		return fmt.Errorf("must satisfy 0 <= hue < 360")
	}
	return nil
}

func validateFraction(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}

// Init implements tea.Model.
func (s *FixedScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *FixedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	}

	return s, cmd
}

// View implements tea.Model.
func (s *FixedScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("GRADIENTFORGE WIZARD - Fixed Values")

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
func (s *FixedScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled.
func (s *FixedScreen) Cancelled() bool {
	return s.cancelled
}
