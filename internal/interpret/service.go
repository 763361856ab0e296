package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clinicli/scl90/internal/llm"
	"github.com/clinicli/scl90/internal/results"
)

// Service generates narratives for result records.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a narrative service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// narrativeOutput is the wire shape of the model's reply.
type narrativeOutput struct {
	Summary            string   `json:"summary"`
	ElevatedDimensions []string `json:"elevated_dimensions"`
	Note               string   `json:"note"`
}

// Narrate produces a plain-language narrative for one record.
func (s *Service) Narrate(ctx context.Context, rec *results.Record) (*Narrative, error) {
	req := llm.Request{
		System: narrativeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNarrativeUserMessage(rec)},
		},
		Schema:      NarrativeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("narrative generation: %w", err)
	}

	var out narrativeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse narrative response: %w", err)
	}

	return &Narrative{
		Summary:     out.Summary,
		Elevated:    out.ElevatedDimensions,
		Note:        out.Note,
		GeneratedAt: time.Now(),
	}, nil
}
