package summary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicli/scl90/internal/report"
	"github.com/clinicli/scl90/internal/results"
	"github.com/clinicli/scl90/internal/screen"
	"github.com/clinicli/scl90/internal/ui/layout"
	"github.com/clinicli/scl90/internal/ui/theme"
)

// Screen displays the score breakdown after a completed administration.
type Screen struct {
	rec *results.Record
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a summary screen for a saved record.
func New(rec *results.Record) *Screen {
	return &Screen{rec: rec}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Results"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.rec == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Questionnaire complete"))
	b.WriteString("\n\n")

	detail := report.RecordDetail(s.rec)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))

	return b.String()
}
