package interpret

import "github.com/clinicli/scl90/internal/llm"

// NarrativeSchema defines the JSON shape the model must return.
var NarrativeSchema = &llm.Schema{
	Name:        "score-narrative",
	Description: "Plain-language narrative for an SCL-90-R score profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Plain-language description of the overall profile, 3-6 sentences",
			},
			"elevated_dimensions": map[string]any{
				"type":        "array",
				"description": "Names of dimensions that stand out as elevated, highest first; empty if none",
				"items":       map[string]any{"type": "string"},
			},
			"note": map[string]any{
				"type":        "string",
				"description": "One sentence reminding the reader this is a screening self-report, not a diagnosis",
			},
		},
		"required":             []any{"summary", "elevated_dimensions", "note"},
		"additionalProperties": false,
	},
}
