package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with Kanjiz styling, shown while a
// question is being generated.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a styled spinner with the given label.
func NewSpinner(label string) Spinner {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{
		Model: sp,
		Label: label,
	}
}

// Init returns the tick command that starts the animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner with its label.
func (s Spinner) View() string {
	return s.Model.View() + " " + theme.Hint.Render(s.Label)
}
