// Package report renders score records for terminal output. The same
// renderers back the read-only subcommands and the post-administration
// summary screen.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clinicli/scl90/internal/catalog"
	"github.com/clinicli/scl90/internal/results"
	"github.com/clinicli/scl90/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04"

// barWidth is the width of the per-dimension mean bar in RecordDetail.
const barWidth = 20

// ResultsTable renders one line per record: participant, timestamp, GSI.
// Records render in the order given.
func ResultsTable(records []*results.Record) string {
	var b strings.Builder

	header := fmt.Sprintf("  %-20s  %-16s  %6s", "PARTICIPANT", "DATE", "GSI")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	for _, rec := range records {
		line := fmt.Sprintf("  %-20s  %-16s  %6.3f",
			rec.Participant,
			rec.Timestamp.Format(timeLayout),
			rec.Scores.Global.GSI)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// RecordDetail renders the full per-dimension breakdown of one record,
// dimensions in catalog order, followed by the global indices.
func RecordDetail(rec *results.Record) string {
	var b strings.Builder

	title := fmt.Sprintf("%s    %s", rec.Participant, rec.Timestamp.Format(timeLayout))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + title))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-28s %5s  %5s  %6s", "DIMENSION", "RAW", "ITEMS", "MEAN")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	for _, d := range catalog.Dimensions() {
		ds, ok := rec.Scores.Dimensions[d.Key]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-28s %5d  %5d  %6.3f  ",
			d.Name, ds.Raw, ds.ItemCount, ds.Mean)
		b.WriteString(theme.Body.Render(line))
		b.WriteString(meanBar(ds.Mean))
		b.WriteString("\n")
	}

	g := rec.Scores.Global
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("  GLOBAL INDICES"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  %-28s %6.3f", "Global Severity Index", g.GSI)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  %-28s %6d", "Positive Symptom Total", g.PST)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  %-28s %6.3f", "Positive Symptom Distress", g.PSDI)))
	b.WriteString("\n")

	return b.String()
}

// meanBar renders a small bar scaling a dimension mean over the 0-4
// distress range.
func meanBar(mean float64) string {
	filled := int(mean / 4 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}

// ComparisonTable renders records chronologically with the first-to-last
// GSI change and its direction label.
func ComparisonTable(cmp *results.Comparison) string {
	var b strings.Builder

	header := fmt.Sprintf("  %-16s  %6s  %6s  %6s", "DATE", "GSI", "PST", "PSDI")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	for _, rec := range cmp.Records {
		g := rec.Scores.Global
		line := fmt.Sprintf("  %-16s  %6.3f  %6d  %6.3f",
			rec.Timestamp.Format(timeLayout), g.GSI, g.PST, g.PSDI)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}

	style := theme.Body
	switch cmp.Label {
	case results.LabelImprovement:
		style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case results.LabelIncrease:
		style = theme.Elevated
	}

	b.WriteString("\n")
	b.WriteString(style.Render(fmt.Sprintf("  GSI change: %+.3f (%s)", cmp.GSIChange, cmp.Label)))
	b.WriteString("\n")

	return b.String()
}
