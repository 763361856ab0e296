package results

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/clinicli/scl90/internal/catalog"
	"github.com/clinicli/scl90/internal/scoring"
)

func completeResponses(value int) scoring.ResponseSet {
	rs := make(scoring.ResponseSet, catalog.ItemCount)
	for id := catalog.FirstItem; id <= catalog.LastItem; id++ {
		rs[id] = value
	}
	return rs
}

func TestBuild(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	rec, err := Build("alice", completeResponses(2))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if rec.ID == "" {
		t.Error("record has no ID")
	}
	if rec.Participant != "alice" {
		t.Errorf("Participant = %q, want alice", rec.Participant)
	}
	if !rec.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", rec.Timestamp, fixed)
	}
	if len(rec.Responses) != catalog.ItemCount {
		t.Errorf("stored %d responses, want %d", len(rec.Responses), catalog.ItemCount)
	}
	if rec.Responses["45"] != 2 {
		t.Errorf(`Responses["45"] = %d, want 2`, rec.Responses["45"])
	}
	if len(rec.Questions) != catalog.ItemCount {
		t.Errorf("snapshot has %d questions, want %d", len(rec.Questions), catalog.ItemCount)
	}
	if len(rec.Scores.Dimensions) != 9 {
		t.Errorf("scored %d dimensions, want 9", len(rec.Scores.Dimensions))
	}
	if rec.Scores.Global.GSI != 2 {
		t.Errorf("GSI = %v, want 2", rec.Scores.Global.GSI)
	}
}

func TestBuildRejectsInvalidResponse(t *testing.T) {
	rs := completeResponses(1)
	rs[10] = 7
	if _, err := Build("alice", rs); err == nil {
		t.Error("Build should reject out-of-range responses")
	}
}

func TestBuildTimestampsDiffer(t *testing.T) {
	a, err := Build("p", scoring.ResponseSet{1: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build("p", scoring.ResponseSet{1: 1})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("two records share an ID")
	}
}

func TestResponseSetRoundTrip(t *testing.T) {
	orig := scoring.ResponseSet{1: 4, 2: 0, 89: 3}
	rec, err := Build("p", orig)
	if err != nil {
		t.Fatal(err)
	}

	got, err := rec.ResponseSet()
	if err != nil {
		t.Fatalf("ResponseSet failed: %v", err)
	}
	for id, v := range orig {
		if got[id] != v {
			t.Errorf("item %d = %d, want %d", id, got[id], v)
		}
	}
}

func TestScoreSetJSONShape(t *testing.T) {
	rec, err := Build("p", completeResponses(1))
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(rec.Scores)
	if err != nil {
		t.Fatalf("marshal scores: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse marshaled scores: %v", err)
	}

	// 9 dimensions plus the global_indices entry.
	if len(doc) != 10 {
		t.Errorf("scores object has %d keys, want 10", len(doc))
	}
	if _, ok := doc["global_indices"]; !ok {
		t.Error("scores object is missing global_indices")
	}
	if _, ok := doc[catalog.KeySomatization]; !ok {
		t.Error("scores object is missing somatization")
	}

	var back ScoreSet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal ScoreSet: %v", err)
	}
	if back.Global.GSI != rec.Scores.Global.GSI {
		t.Errorf("GSI after round trip = %v, want %v", back.Global.GSI, rec.Scores.Global.GSI)
	}
	if back.Dimensions[catalog.KeyAnxiety] != rec.Scores.Dimensions[catalog.KeyAnxiety] {
		t.Error("anxiety dimension changed across round trip")
	}
}
