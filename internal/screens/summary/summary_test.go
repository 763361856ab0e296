package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/clinicli/scl90/internal/catalog"
	"github.com/clinicli/scl90/internal/results"
	"github.com/clinicli/scl90/internal/scoring"
)

func testRecord(t *testing.T) *results.Record {
	t.Helper()
	responses := make(scoring.ResponseSet)
	for i := catalog.FirstItem; i <= catalog.LastItem; i++ {
		responses[i] = 2
	}
	rec, err := results.Build("alice", responses)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	rec.Timestamp = time.Date(2026, 5, 12, 10, 30, 0, 0, time.UTC)
	return rec
}

func TestTitle(t *testing.T) {
	s := New(testRecord(t))
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestViewShowsDimensionsAndIndices(t *testing.T) {
	s := New(testRecord(t))
	view := s.View(100, 40)
	if view == "" {
		t.Fatal("empty view")
	}

	for _, want := range []string{"Somatization", "Depression", "Global Severity Index", "Positive Symptom Total"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterQuits(t *testing.T) {
	s := New(testRecord(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a quit command on Enter")
	}
}

func TestEscQuits(t *testing.T) {
	s := New(testRecord(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a quit command on Esc")
	}
}

func TestKeyHints(t *testing.T) {
	s := New(testRecord(t))
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
