package results

import (
	"errors"
	"math"
	"sort"
)

// Comparison labels for the first-to-last GSI change.
const (
	LabelImprovement = "improvement"
	LabelIncrease    = "increase"
	LabelNoChange    = "no change"
)

// ErrInsufficientRecords is returned when a comparison is requested for
// a participant with fewer than two records.
var ErrInsufficientRecords = errors.New("need at least 2 results to compare")

// Comparison summarizes a participant's trajectory across repeated
// administrations.
type Comparison struct {
	// Records in chronological order (by timestamp, not storage order).
	Records []*Record

	// GSIChange is the signed change in GSI from the first to the last
	// record, rounded to 3 decimal places. Negative means symptoms
	// decreased.
	GSIChange float64

	// Label is "improvement", "increase", or "no change" depending on
	// the sign of GSIChange.
	Label string
}

// Compare builds a chronological comparison from a participant's
// records. The input is the store's insertion-order result; Compare
// sorts a copy by timestamp and never mutates the input.
func Compare(records []*Record) (*Comparison, error) {
	if len(records) < 2 {
		return nil, ErrInsufficientRecords
	}

	chrono := make([]*Record, len(records))
	copy(chrono, records)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].Timestamp.Before(chrono[j].Timestamp)
	})

	first := chrono[0].Scores.Global.GSI
	last := chrono[len(chrono)-1].Scores.Global.GSI
	change := math.Round((last-first)*1000) / 1000

	label := LabelNoChange
	switch {
	case change < 0:
		label = LabelImprovement
	case change > 0:
		label = LabelIncrease
	}

	return &Comparison{
		Records:   chrono,
		GSIChange: change,
		Label:     label,
	}, nil
}
