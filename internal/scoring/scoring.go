// Package scoring computes SCL-90-R dimension scores and global
// distress indices from a set of item responses. Compute is a pure
// function over its inputs; the fixed questionnaire configuration lives
// in the catalog package and is passed in explicitly.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/clinicli/scl90/internal/catalog"
)

const (
	// MinResponse and MaxResponse bound the 5-point distress scale.
	MinResponse = 0
	MaxResponse = 4
)

var (
	// ErrInvalidResponseValue is returned when a present response lies
	// outside the [0, 4] scale.
	ErrInvalidResponseValue = errors.New("response value out of range")

	// ErrEmptyConfiguration is returned when a dimension's item list or
	// the global union is empty. The fixed catalog never produces this;
	// the check guards Compute's contract for arbitrary configurations.
	ErrEmptyConfiguration = errors.New("empty scoring configuration")
)

// ResponseSet maps item identifiers to responses on the 0-4 scale.
// It may be partial: an absent item scores 0 in every sum and is never
// counted as a positive symptom. Absence means "no symptom reported",
// not missing data. Stored results depend on this policy.
type ResponseSet map[int]int

// DimensionScore is the derived score for one symptom dimension.
type DimensionScore struct {
	Raw       int     // sum of responses over the dimension's items
	Mean      float64 // Raw / ItemCount, full precision, never rounded
	ItemCount int     // fixed size of the dimension's item list
}

// GlobalIndices are the three summary indices computed over the
// deduplicated union of all dimension items and the additional items.
type GlobalIndices struct {
	TotalScore int     // sum of responses over the union
	GSI        float64 // TotalScore / |union|, rounded to 3 decimals
	PST        int     // count of union items with response > 0
	PSDI       float64 // TotalScore / PST (0 when PST is 0), 3 decimals
}

// Scores bundles every derived statistic for one administration.
type Scores struct {
	Dimensions map[string]DimensionScore
	Global     GlobalIndices
}

// Compute scores a response set against the given dimension
// configuration and additional item list.
//
// Each dimension's raw score counts every item in its own list, even if
// a configuration were to list an item under two dimensions. The global
// union, in contrast, is deduplicated so no item is counted twice in
// TotalScore, GSI, PST, or PSDI.
func Compute(responses ResponseSet, dims []catalog.Dimension, additional []int) (*Scores, error) {
	for id, v := range responses {
		if v < MinResponse || v > MaxResponse {
			return nil, fmt.Errorf("%w: item %d scored %d", ErrInvalidResponseValue, id, v)
		}
	}

	scores := &Scores{
		Dimensions: make(map[string]DimensionScore, len(dims)),
	}

	union := make(map[int]struct{})
	for _, d := range dims {
		if len(d.Items) == 0 {
			return nil, fmt.Errorf("%w: dimension %s has no items", ErrEmptyConfiguration, d.Key)
		}
		raw := 0
		for _, id := range d.Items {
			raw += responses[id]
			union[id] = struct{}{}
		}
		scores.Dimensions[d.Key] = DimensionScore{
			Raw:       raw,
			Mean:      float64(raw) / float64(len(d.Items)),
			ItemCount: len(d.Items),
		}
	}
	for _, id := range additional {
		union[id] = struct{}{}
	}
	if len(union) == 0 {
		return nil, fmt.Errorf("%w: global union has no items", ErrEmptyConfiguration)
	}

	total, pst := 0, 0
	for id := range union {
		v := responses[id]
		total += v
		if v > 0 {
			pst++
		}
	}

	scores.Global = GlobalIndices{
		TotalScore: total,
		GSI:        round3(float64(total) / float64(len(union))),
		PST:        pst,
	}
	if pst > 0 {
		scores.Global.PSDI = round3(float64(total) / float64(pst))
	}

	return scores, nil
}

// UnionSize returns the number of distinct items covered by the given
// configuration, i.e. the fixed GSI denominator.
func UnionSize(dims []catalog.Dimension, additional []int) int {
	union := make(map[int]struct{})
	for _, d := range dims {
		for _, id := range d.Items {
			union[id] = struct{}{}
		}
	}
	for _, id := range additional {
		union[id] = struct{}{}
	}
	return len(union)
}

// SortedKeys returns the dimension keys of a score map in catalog
// display order, with any unknown keys appended alphabetically.
func SortedKeys(scores map[string]DimensionScore) []string {
	ordered := make([]string, 0, len(scores))
	seen := make(map[string]bool, len(scores))
	for _, d := range catalog.Dimensions() {
		if _, ok := scores[d.Key]; ok {
			ordered = append(ordered, d.Key)
			seen[d.Key] = true
		}
	}
	var rest []string
	for k := range scores {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

// round3 rounds to 3 decimal places, half away from zero. All inputs
// here are non-negative, so this behaves as round-half-up.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
