package catalog

import "testing"

func TestDimensionItemCounts(t *testing.T) {
	counts := map[string]int{
		KeySomatization:      12,
		KeyObsessiveComp:     10,
		KeyInterpersonalSens: 9,
		KeyDepression:        13,
		KeyAnxiety:           10,
		KeyHostility:         6,
		KeyPhobicAnxiety:     7,
		KeyParanoidIdeation:  6,
		KeyPsychoticism:      10,
	}

	dims := Dimensions()
	if len(dims) != 9 {
		t.Fatalf("expected 9 dimensions, got %d", len(dims))
	}

	for _, d := range dims {
		want, ok := counts[d.Key]
		if !ok {
			t.Errorf("unexpected dimension key %q", d.Key)
			continue
		}
		if len(d.Items) != want {
			t.Errorf("dimension %s has %d items, want %d", d.Key, len(d.Items), want)
		}
	}
}

func TestFullCoverageNoOverlap(t *testing.T) {
	seen := make(map[int]string)

	for _, d := range Dimensions() {
		for _, id := range d.Items {
			if prev, dup := seen[id]; dup {
				t.Errorf("item %d appears in both %s and %s", id, prev, d.Key)
			}
			seen[id] = d.Key
		}
	}
	for _, id := range AdditionalItems() {
		if prev, dup := seen[id]; dup {
			t.Errorf("additional item %d also appears in dimension %s", id, prev)
		}
		seen[id] = "additional"
	}

	if len(seen) != ItemCount {
		t.Errorf("configuration covers %d items, want %d", len(seen), ItemCount)
	}
	for id := FirstItem; id <= LastItem; id++ {
		if _, ok := seen[id]; !ok {
			t.Errorf("item %d is not covered by any dimension or the additional list", id)
		}
	}
}

func TestItemText(t *testing.T) {
	text, err := ItemText(1)
	if err != nil {
		t.Fatalf("ItemText(1) returned error: %v", err)
	}
	if text != "Headaches" {
		t.Errorf("ItemText(1) = %q, want %q", text, "Headaches")
	}

	for id := FirstItem; id <= LastItem; id++ {
		text, err := ItemText(id)
		if err != nil {
			t.Errorf("ItemText(%d) returned error: %v", id, err)
		}
		if text == "" {
			t.Errorf("ItemText(%d) is empty", id)
		}
	}
}

func TestItemTextInvalidID(t *testing.T) {
	for _, id := range []int{0, -1, 91, 1000} {
		if _, err := ItemText(id); err == nil {
			t.Errorf("ItemText(%d) should fail", id)
		}
	}
}

func TestDimensionsOf(t *testing.T) {
	dims, err := DimensionsOf(1)
	if err != nil {
		t.Fatalf("DimensionsOf(1) returned error: %v", err)
	}
	if len(dims) != 1 || dims[0] != KeySomatization {
		t.Errorf("DimensionsOf(1) = %v, want [%s]", dims, KeySomatization)
	}

	// Additional-only items belong to no dimension.
	dims, err = DimensionsOf(19)
	if err != nil {
		t.Fatalf("DimensionsOf(19) returned error: %v", err)
	}
	if len(dims) != 0 {
		t.Errorf("DimensionsOf(19) = %v, want empty", dims)
	}

	if _, err := DimensionsOf(91); err == nil {
		t.Error("DimensionsOf(91) should fail")
	}
}

func TestSnapshot(t *testing.T) {
	snap := Snapshot()
	if len(snap) != ItemCount {
		t.Fatalf("snapshot has %d entries, want %d", len(snap), ItemCount)
	}
	if snap["1"] != "Headaches" {
		t.Errorf(`snap["1"] = %q, want "Headaches"`, snap["1"])
	}
	if snap["90"] == "" {
		t.Error(`snap["90"] is empty`)
	}

	// Snapshot must be a copy; mutating it must not affect the catalog.
	snap["1"] = "tampered"
	again := Snapshot()
	if again["1"] != "Headaches" {
		t.Error("snapshot mutation leaked into the catalog")
	}
}

func TestDimensionByKey(t *testing.T) {
	d := DimensionByKey(KeyDepression)
	if d == nil {
		t.Fatal("DimensionByKey(depression) = nil")
	}
	if d.Name != "Depression" {
		t.Errorf("Name = %q, want Depression", d.Name)
	}
	if DimensionByKey("nope") != nil {
		t.Error("DimensionByKey(nope) should be nil")
	}
}
