package interpret

import (
	"fmt"
	"strings"

	"github.com/clinicli/scl90/internal/catalog"
	"github.com/clinicli/scl90/internal/results"
)

const narrativeSystemPrompt = `You are assisting a clinician by restating SCL-90-R questionnaire scores in careful, plain language. You describe patterns in the numbers. You never diagnose, never speculate about causes, and never give treatment advice.`

// buildNarrativeUserMessage serializes one record's score profile for
// the model.
func buildNarrativeUserMessage(rec *results.Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Administration date: %s\n\n", rec.Timestamp.Format("2006-01-02")))

	b.WriteString("Dimension scores (mean is on the 0-4 distress scale):\n")
	for _, d := range catalog.Dimensions() {
		ds, ok := rec.Scores.Dimensions[d.Key]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: raw %d over %d items, mean %.2f\n",
			d.Name, ds.Raw, ds.ItemCount, ds.Mean))
	}

	g := rec.Scores.Global
	b.WriteString(fmt.Sprintf("\nGlobal indices:\nGSI (overall severity, 0-4): %.3f\nPST (items endorsed above zero): %d\nPSDI (intensity of endorsed items, 0-4): %.3f\n", g.GSI, g.PST, g.PSDI))

	b.WriteString(`
Instructions:
1. Summarize the profile in 3-6 plain sentences a non-specialist could follow. Anchor statements to the numbers above.
2. List the dimensions that stand out as elevated relative to the rest of the profile, highest first. Leave the list empty for a flat profile.
3. Close with one sentence noting this is a self-report screening instrument and not a diagnosis.
Do not mention any dimension that does not appear above. Plain ASCII text only.`)

	return b.String()
}
