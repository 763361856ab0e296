// Package results assembles, persists, and compares result records.
// One record is one completed administration: who took the test, when,
// every raw response, the item catalog snapshot it was administered
// with, and the computed scores.
package results

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/clinicli/scl90/internal/catalog"
	"github.com/clinicli/scl90/internal/scoring"
)

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// Record is one completed test administration. Records are created
// once and never mutated.
type Record struct {
	ID          string            `json:"id"`
	Participant string            `json:"participant"`
	Timestamp   time.Time         `json:"timestamp"`
	Responses   map[string]int    `json:"responses"`
	Questions   map[string]string `json:"questions"`
	Scores      ScoreSet          `json:"scores"`
}

// ScoreSet is the stored shape of a computed score set: per-dimension
// scores keyed by dimension, plus the global indices.
type ScoreSet struct {
	Dimensions map[string]DimensionScore
	Global     GlobalIndices
}

// DimensionScore mirrors scoring.DimensionScore in its wire form.
type DimensionScore struct {
	Raw       int     `json:"raw_score"`
	Mean      float64 `json:"mean_score"`
	ItemCount int     `json:"item_count"`
}

// GlobalIndices is the stored form of the three global indices.
type GlobalIndices struct {
	GSI  float64 `json:"gsi"`
	PST  int     `json:"pst"`
	PSDI float64 `json:"psdi"`
}

// globalIndicesKey is the reserved key inside the scores map that holds
// the global indices instead of a dimension score.
const globalIndicesKey = "global_indices"

// Build creates a new record for a participant from their responses,
// scoring them against the fixed catalog configuration. The creation
// timestamp is assigned here, exactly once.
//
// Build does not require the response set to be complete; the
// interactive flow always supplies all 90 items, but partial sets score
// fine (absent items count as zero).
func Build(participant string, responses scoring.ResponseSet) (*Record, error) {
	scores, err := scoring.Compute(responses, catalog.Dimensions(), catalog.AdditionalItems())
	if err != nil {
		return nil, fmt.Errorf("score responses: %w", err)
	}

	wire := make(map[string]int, len(responses))
	for id, v := range responses {
		wire[strconv.Itoa(id)] = v
	}

	return &Record{
		ID:          uuid.NewString(),
		Participant: participant,
		Timestamp:   timeNow().UTC().Truncate(time.Second),
		Responses:   wire,
		Questions:   catalog.Snapshot(),
		Scores:      NewScoreSet(scores),
	}, nil
}

// NewScoreSet converts engine output to its stored form.
func NewScoreSet(s *scoring.Scores) ScoreSet {
	set := ScoreSet{
		Dimensions: make(map[string]DimensionScore, len(s.Dimensions)),
		Global: GlobalIndices{
			GSI:  s.Global.GSI,
			PST:  s.Global.PST,
			PSDI: s.Global.PSDI,
		},
	}
	for key, ds := range s.Dimensions {
		set.Dimensions[key] = DimensionScore{
			Raw:       ds.Raw,
			Mean:      ds.Mean,
			ItemCount: ds.ItemCount,
		}
	}
	return set
}

// ResponseSet converts the stored string-keyed responses back to the
// engine's integer-keyed form.
func (r *Record) ResponseSet() (scoring.ResponseSet, error) {
	rs := make(scoring.ResponseSet, len(r.Responses))
	for key, v := range r.Responses {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("response key %q is not an item id: %w", key, err)
		}
		rs[id] = v
	}
	return rs, nil
}

// MarshalJSON flattens the dimension scores and global indices into a
// single object, the shape the store document uses:
//
//	{"somatization": {...}, ..., "global_indices": {"gsi": ..., ...}}
func (s ScoreSet) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(s.Dimensions)+1)
	for key, ds := range s.Dimensions {
		doc[key] = ds
	}
	doc[globalIndicesKey] = s.Global
	return json.Marshal(doc)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *ScoreSet) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	s.Dimensions = make(map[string]DimensionScore, len(doc))
	for key, raw := range doc {
		if key == globalIndicesKey {
			if err := json.Unmarshal(raw, &s.Global); err != nil {
				return fmt.Errorf("parse global indices: %w", err)
			}
			continue
		}
		var ds DimensionScore
		if err := json.Unmarshal(raw, &ds); err != nil {
			return fmt.Errorf("parse dimension %q: %w", key, err)
		}
		s.Dimensions[key] = ds
	}
	return nil
}
