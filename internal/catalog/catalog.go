// Package catalog holds the fixed SCL-90-R questionnaire configuration:
// the 90 item texts, the nine symptom dimensions with their item lists,
// and the additional items that count only toward the global indices.
// Everything here is static seed data, indexed once at init time and
// never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// FirstItem and LastItem bound the valid item identifier range.
	FirstItem = 1
	LastItem  = 90

	// ItemCount is the total number of questionnaire items.
	ItemCount = 90
)

// ErrInvalidItemID is returned for item identifiers outside [1, 90].
var ErrInvalidItemID = errors.New("item id out of range")

// Dimension is one of the nine symptom dimensions, with its fixed
// ordered item list.
type Dimension struct {
	Key   string
	Name  string
	Items []int
}

// dimensionOf indexes items by the dimension key they belong to.
// Items appearing in no dimension (the additional items) are absent.
var dimensionOf map[int]string

func init() {
	dimensionOf = make(map[int]string, ItemCount)
	for _, d := range seedDimensions {
		for _, id := range d.Items {
			dimensionOf[id] = d.Key
		}
	}
}

// ItemText returns the display text for an item.
func ItemText(id int) (string, error) {
	if id < FirstItem || id > LastItem {
		return "", fmt.Errorf("%w: %d", ErrInvalidItemID, id)
	}
	return itemTexts[id-1], nil
}

// DimensionsOf returns the dimension keys an item contributes to.
// The result is empty (not an error) for additional-only items, which
// count toward the global indices but belong to no named dimension.
func DimensionsOf(id int) ([]string, error) {
	if id < FirstItem || id > LastItem {
		return nil, fmt.Errorf("%w: %d", ErrInvalidItemID, id)
	}
	if key, ok := dimensionOf[id]; ok {
		return []string{key}, nil
	}
	return nil, nil
}

// Dimensions returns the nine symptom dimensions in display order.
// Callers must not mutate the returned slices.
func Dimensions() []Dimension {
	return seedDimensions
}

// DimensionByKey returns the dimension with the given key, or nil.
func DimensionByKey(key string) *Dimension {
	for i := range seedDimensions {
		if seedDimensions[i].Key == key {
			return &seedDimensions[i]
		}
	}
	return nil
}

// AdditionalItems returns the items outside every named dimension that
// still count toward the global indices.
func AdditionalItems() []int {
	return seedAdditionalItems
}

// Snapshot returns the full item catalog as a string-keyed map, the
// shape stored inside result records so old results keep the item
// wording they were administered with.
func Snapshot() map[string]string {
	snap := make(map[string]string, ItemCount)
	for i, text := range itemTexts {
		snap[strconv.Itoa(i+1)] = text
	}
	return snap
}
