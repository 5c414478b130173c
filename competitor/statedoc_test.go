package competitor

import (
	"encoding/json"
	"testing"
)

func TestStateDocJSONShapeIncludesFlattenedFields(t *testing.T) {
	a, _ := NewElo(1500)
	doc := a.ExportState()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	for _, key := range []string{"type", "version", "created_at", "id", "parameters", "state", "class_vars", "initial_rating", "current_rating"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("encoded state document missing field %q: %s", key, raw)
		}
	}
	if m["type"] != string(KindElo) {
		t.Fatalf("type = %v, want %v", m["type"], KindElo)
	}
}

func TestStateDocDecoderPrefersStructuredOverFlattened(t *testing.T) {
	a, _ := NewElo(1500)
	doc := a.ExportState()

	// Corrupt the flattened mirror; the structured field must win.
	stale := 1.0
	doc.CurrentRating = &stale

	target, _ := NewEloWithConfig(1, -1000, &EloConfig{KFactor: 32})
	if err := target.LoadState(doc); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if target.Rating() != a.Rating() {
		t.Fatalf("LoadState used the stale flattened field: got %v, want %v", target.Rating(), a.Rating())
	}
}

func TestStateDocDecoderFallsBackToFlattenedFields(t *testing.T) {
	a, _ := NewElo(1500)
	doc := a.ExportState()

	// Drop the structured field entirely; only the flattened mirror remains.
	doc.State = nil

	target, _ := NewEloWithConfig(1, -1000, &EloConfig{KFactor: 32})
	if err := target.LoadState(doc); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if target.Rating() != *doc.CurrentRating {
		t.Fatalf("LoadState didn't fall back to the flattened field: got %v, want %v", target.Rating(), *doc.CurrentRating)
	}
}
