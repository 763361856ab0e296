// Package interpret turns a scored result record into a plain-language
// narrative via an LLM provider. The narrative is descriptive only; it
// restates the score profile in accessible terms and always carries a
// note that it is not a diagnosis.
package interpret

import "time"

// Narrative is the structured interpretation of one result record.
type Narrative struct {
	// Summary is a short plain-language description of the overall
	// profile (3-6 sentences).
	Summary string

	// Elevated lists the dimension names the model singled out as
	// notably elevated, highest first. Empty for a flat profile.
	Elevated []string

	// Note is the fixed-purpose caution sentence reminding the reader
	// this is a self-report screen, not a diagnosis.
	Note string

	// GeneratedAt is when the narrative was produced.
	GeneratedAt time.Time
}

// Config tunes narrative generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}
