// Package wizard provides the interactive terminal flow for composing
// and running a gradient generation.
package wizard

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/components"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/screens"
	"github.com/mrsinham/gradientforge/internal/render"
)

// Phase represents the current screen of the wizard.
type Phase int

const (
	PhaseImage Phase = iota
	PhaseChannel
	PhaseFixed
	PhaseNoise
	PhaseSummary
	PhaseSaveConfig
	PhaseProgress
	PhaseComplete
	PhaseError
)

// Wizard is the orchestrator for the interactive interface.
type Wizard struct {
	state *WizardState

	phase Phase

	// Screen instances
	imageScreen      *screens.ImageScreen
	channelScreen    *screens.ChannelScreen
	fixedScreen      *screens.FixedScreen
	noiseScreen      *screens.NoiseScreen
	summaryScreen    *screens.SummaryScreen
	progressScreen   *screens.ProgressScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	// Save config form
	saveConfigForm *huh.Form
	configPath     string

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a wizard with default or loaded state.
func NewWizard(state *WizardState) *Wizard {
	if state == nil {
		state = NewWizardState()
	}

	w := &Wizard{
		state: state,
		phase: PhaseImage,
	}
	w.imageScreen = screens.NewImageScreen(&w.state.Image)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.imageScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseImage:
		return w.updateImage(msg)
	case PhaseChannel:
		return w.updateChannel(msg)
	case PhaseFixed:
		return w.updateFixed(msg)
	case PhaseNoise:
		return w.updateNoise(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseProgress:
		return w.updateProgress(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseImage:
		return w.imageScreen.View()
	case PhaseChannel:
		return w.channelScreen.View()
	case PhaseFixed:
		return w.fixedScreen.View()
	case PhaseNoise:
		return w.noiseScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseProgress:
		return w.progressScreen.View()
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

func (w *Wizard) updateImage(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.imageScreen.Update(msg)
	if is, ok := model.(*screens.ImageScreen); ok {
		w.imageScreen = is
	}

	if w.imageScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.imageScreen.Done() {
		w.phase = PhaseChannel
		w.channelScreen = screens.NewChannelScreen(&w.state.Color)
		return w, w.channelScreen.Init()
	}

	return w, cmd
}

func (w *Wizard) updateChannel(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.channelScreen.Update(msg)
	if cs, ok := model.(*screens.ChannelScreen); ok {
		w.channelScreen = cs
	}

	if w.channelScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.channelScreen.Done() {
		// The fixed screen depends on the chosen channel, so it is
		// built only now.
		w.phase = PhaseFixed
		w.fixedScreen = screens.NewFixedScreen(&w.state.Color)
		return w, w.fixedScreen.Init()
	}

	return w, cmd
}

func (w *Wizard) updateFixed(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.fixedScreen.Update(msg)
	if fs, ok := model.(*screens.FixedScreen); ok {
		w.fixedScreen = fs
	}

	if w.fixedScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.fixedScreen.Done() {
		w.phase = PhaseNoise
		w.noiseScreen = screens.NewNoiseScreen(&w.state.Noise)
		return w, w.noiseScreen.Init()
	}

	return w, cmd
}

func (w *Wizard) updateNoise(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.noiseScreen.Update(msg)
	if ns, ok := model.(*screens.NoiseScreen); ok {
		w.noiseScreen = ns
	}

	if w.noiseScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.noiseScreen.Done() {
		return w.transitionToSummary()
	}

	return w, cmd
}

func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(w.state)
	return w, w.summaryScreen.Init()
}

func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			w.phase = PhaseImage
			w.imageScreen = screens.NewImageScreen(&w.state.Image)
			return w, w.imageScreen.Init()

		case screens.SummaryActionGenerate:
			return w.startGeneration()

		case screens.SummaryActionSaveConfig:
			return w.transitionToSaveConfig()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	w.configPath = "gradientforge.yaml"

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Path for the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		if err := SaveToYAML(w.state, w.configPath); err != nil {
			w.err = err
			w.phase = PhaseError
			w.errorScreen = screens.NewErrorScreen(err)
			return w, nil
		}

		return w.transitionToSummary()
	}

	return w, cmd
}

func (w *Wizard) viewSaveConfig() string {
	title := components.TitleStyle.Render("Save Configuration")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveConfigForm.View(),
		"",
		components.HintStyle.Render("Enter: Save | Esc: Back"),
	)
}

// startGeneration resolves the state into render options and runs the
// generation in the background, reporting back with a completion or
// error message.
func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	w.phase = PhaseProgress
	total := w.state.Image.Count
	if total < 1 {
		total = 1
	}
	w.progressScreen = screens.NewProgressScreen(total)

	return w, func() tea.Msg {
		startTime := time.Now()

		opts, err := ToOptions(w.state)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}
		opts.Quiet = true

		files, err := render.Generate(opts)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		var totalSize int64
		for _, f := range files {
			totalSize += f.Bytes
		}

		output := files[0].Path
		if len(files) > 1 {
			output = filepath.Dir(files[0].Path)
		}

		return screens.CompletionMsg{
			TotalFiles: len(files),
			TotalSize:  totalSize,
			Duration:   time.Since(startTime),
			Output:     output,
		}
	}
}

func (w *Wizard) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.ProgressMsg:
		w.progressScreen.SetProgress(msg.Current, msg.Total, msg.Path)
		return w, nil

	case screens.CompletionMsg:
		w.phase = PhaseComplete
		w.completionScreen = screens.NewCompletionScreen(msg)
		return w, nil

	case screens.ErrorMsg:
		w.phase = PhaseError
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen(msg.Error)
		return w, nil
	}

	model, cmd := w.progressScreen.Update(msg)
	if ps, ok := model.(*screens.ProgressScreen); ok {
		w.progressScreen = ps
	}

	if w.progressScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	return w, cmd
}

func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.completionScreen.Update(msg)
	if cs, ok := model.(*screens.CompletionScreen); ok {
		w.completionScreen = cs
	}

	if w.completionScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// Run starts the interactive wizard. If fromConfig is provided, the
// screens start pre-filled from that YAML file.
func Run(fromConfig string) error {
	var state *WizardState

	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		state = loaded
	}

	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // user cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
