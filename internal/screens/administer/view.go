package administer

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clinicli/scl90/internal/catalog"
	"github.com/clinicli/scl90/internal/ui/components"
	"github.com/clinicli/scl90/internal/ui/theme"
)

const scaleLegend = "0 Not at all   1 A little bit   2 Moderately   3 Quite a bit   4 Extremely"

func (s *Screen) View(width, height int) string {
	if s.saveErr != nil {
		return renderSaveError(width, s.saveErr)
	}
	if s.saving {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving results...")
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	return s.renderItem(width)
}

func (s *Screen) renderItem(width int) string {
	text, err := catalog.ItemText(s.item)
	if err != nil {
		return ""
	}

	var b strings.Builder

	bar := components.NewProgressBar("", float64(s.item-1)/float64(catalog.ItemCount), false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("How much were you distressed by:"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d. %s", s.item, text)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(scaleLegend))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Rating: " + s.input.View()))

	if s.errNote != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errNote))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this questionnaire?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderSaveError(width int, err error) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Could not save results: %v\n\n  Press any key to exit.", err))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
