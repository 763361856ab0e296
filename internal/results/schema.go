package results

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the JSON Schema the store document must satisfy at
// load time. A violation is treated like any other corruption: the
// store opens empty with a warning rather than failing the run.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"results": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string"},
					"participant": map[string]any{"type": "string", "minLength": 1},
					"timestamp":   map[string]any{"type": "string"},
					"responses": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 4,
						},
					},
					"questions": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "string"},
					},
					"scores": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"global_indices": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"gsi":  map[string]any{"type": "number"},
									"pst":  map[string]any{"type": "integer"},
									"psdi": map[string]any{"type": "number"},
								},
								"required": []any{"gsi", "pst", "psdi"},
							},
						},
						"required": []any{"global_indices"},
						"additionalProperties": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"raw_score":  map[string]any{"type": "integer"},
								"mean_score": map[string]any{"type": "number"},
								"item_count": map[string]any{"type": "integer", "minimum": 1},
							},
							"required": []any{"raw_score", "mean_score", "item_count"},
						},
					},
				},
				"required": []any{"participant", "timestamp", "responses", "questions", "scores"},
			},
		},
	},
	"required": []any{"version", "results"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw document bytes against documentSchema.
func validateDocument(data []byte) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileDocumentSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile document schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("document schema violation: %w", err)
	}
	return nil
}

func compileDocumentSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://results-document.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
