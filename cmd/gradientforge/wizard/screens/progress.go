package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard/components"
)

// ProgressMsg updates the progress screen during generation.
type ProgressMsg struct {
	Current int    // completed images
	Total   int    // images in the run
	Path    string // last written file
}

// CompletionMsg is sent when generation completes successfully.
type CompletionMsg struct {
	TotalFiles int
	TotalSize  int64
	Duration   time.Duration
	Output     string
}

// ErrorMsg is sent when generation fails.
type ErrorMsg struct {
	Error error
}

var (
	progressBarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205"))

	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	progressPercentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	progressFileStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)

// ProgressScreen displays render progress.
type ProgressScreen struct {
	current   int
	total     int
	path      string
	startTime time.Time
	cancelled bool
	width     int
	height    int
}

// NewProgressScreen creates a progress screen expecting total images.
func NewProgressScreen(total int) *ProgressScreen {
	return &ProgressScreen{
		total:     total,
		startTime: time.Now(),
	}
}

// Init implements tea.Model.
func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *ProgressScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case ProgressMsg:
		s.current = msg.Current
		s.total = msg.Total
		s.path = msg.Path
	}

	return s, nil
}

// View implements tea.Model.
func (s *ProgressScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("Rendering gradient images...")

	var percent float64
	if s.total > 0 {
		percent = float64(s.current) / float64(s.total) * 100
	}

	barWidth := 40
	if s.width > 60 {
		barWidth = s.width / 2
		if barWidth > 60 {
			barWidth = 60
		}
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(renderProgressBar(percent, barWidth))
	sb.WriteString(" ")
	sb.WriteString(progressPercentStyle.Render(fmt.Sprintf("%d%%", int(percent))))
	sb.WriteString("\n\n")
	sb.WriteString(progressFileStyle.Render(fmt.Sprintf("Image %d/%d", s.current, s.total)))
	if s.path != "" {
		displayPath := s.path
		if len(displayPath) > barWidth {
			displayPath = "..." + displayPath[len(displayPath)-barWidth+3:]
		}
		sb.WriteString(": ")
		sb.WriteString(progressFileStyle.Render(displayPath))
	}
	sb.WriteString("\n")
	sb.WriteString(progressFileStyle.Render(fmt.Sprintf("Elapsed: %.1fs", time.Since(s.startTime).Seconds())))
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Press Ctrl+C to cancel"))

	return sb.String()
}

// renderProgressBar creates a fixed-width visual progress bar.
func renderProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := progressBarStyle.Render("[" + strings.Repeat("█", filled))
	bar += progressBarEmptyStyle.Render(strings.Repeat("░", empty) + "]")

	return bar
}

// Cancelled returns true if the user cancelled.
func (s *ProgressScreen) Cancelled() bool {
	return s.cancelled
}

// SetProgress updates the progress from outside the tea loop.
func (s *ProgressScreen) SetProgress(current, total int, path string) {
	s.current = current
	s.total = total
	s.path = path
}

var (
	completionSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	completionCommandStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("252")).
				Padding(0, 1)
)

// CompletionScreen displays the completion summary.
type CompletionScreen struct {
	totalFiles int
	totalSize  int64
	duration   time.Duration
	output     string
	done       bool
	width      int
	height     int
}

// NewCompletionScreen creates a completion screen from the final
// message.
func NewCompletionScreen(msg CompletionMsg) *CompletionScreen {
	return &CompletionScreen{
		totalFiles: msg.TotalFiles,
		totalSize:  msg.TotalSize,
		duration:   msg.Duration,
		output:     msg.Output,
	}
}

// Init implements tea.Model.
func (s *CompletionScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model.
func (s *CompletionScreen) View() string {
	var sb strings.Builder

	sb.WriteString(completionSuccessStyle.Render("✓ Generation complete!"))
	sb.WriteString("\n\n")

	sb.WriteString(components.TitleStyle.Render("Summary:"))
	sb.WriteString("\n")

	stats := []struct {
		label string
		value string
	}{
		{"Images created", fmt.Sprintf("%d", s.totalFiles)},
		{"Total size", humanize.Bytes(uint64(s.totalSize))},
		{"Duration", fmt.Sprintf("%.1fs", s.duration.Seconds())},
		{"Output", s.output},
	}

	for _, stat := range stats {
		sb.WriteString("  ")
		sb.WriteString(components.LabelStyle.Render(stat.label + ":"))
		sb.WriteString(" ")
		sb.WriteString(components.ValueStyle.Render(stat.value))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(components.TitleStyle.Render("Next steps:"))
	sb.WriteString("\n")
	sb.WriteString("  • View files: ")
	sb.WriteString(completionCommandStyle.Render(fmt.Sprintf("ls -la %s", s.output)))
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished.
func (s *CompletionScreen) Done() bool {
	return s.done
}

var errorTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

// ErrorScreen displays a generation failure.
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

// NewErrorScreen creates an error screen for err.
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{err: err}
}

// Init implements tea.Model.
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model.
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	sb.WriteString(errorTitleStyle.Render("✗ Generation failed"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Error:"))
	sb.WriteString("\n  ")
	sb.WriteString(s.err.Error())
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished.
func (s *ErrorScreen) Done() bool {
	return s.done
}

// Error returns the underlying error.
func (s *ErrorScreen) Error() error {
	return s.err
}
