package competitor

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"elote-go/eloteerr"
)

// StateDocVersion is the current on-disk version of StateDoc. Bumping it
// is only necessary if the structured fields change shape; the decoder
// tolerates missing flattened fields from any version.
const StateDocVersion = 1

// StateDoc is the self-describing, bit-stable record a Competitor
// serializes to and reloads from. Parameters holds constructor-time
// values, State holds the dynamic values a bout mutates, and ClassVars
// holds the variant's tunables at export time. The flattened
// InitialRating/CurrentRating fields mirror Parameters/State for readers
// that predate the structured layout; the encoder always emits both, the
// decoder prefers the structured fields and falls back to the flattened
// ones only when a structured field is absent.
type StateDoc struct {
	Type       Kind           `json:"type"`
	Version    int            `json:"version"`
	CreatedAt  int64          `json:"created_at"`
	ID         string         `json:"id"`
	Parameters map[string]any `json:"parameters"`
	State      map[string]any `json:"state"`
	ClassVars  map[string]any `json:"class_vars"`

	// Backward-compatibility flattening.
	InitialRating *float64 `json:"initial_rating,omitempty"`
	CurrentRating *float64 `json:"current_rating,omitempty"`
}

// newStateDoc builds the common envelope for a variant's ExportState.
func newStateDoc(kind Kind, id string, createdAt time.Time, initialRating, currentRating float64, params, state, classVars map[string]any) StateDoc {
	ir, cr := initialRating, currentRating
	return StateDoc{
		Type:          kind,
		Version:       StateDocVersion,
		CreatedAt:     createdAt.Unix(),
		ID:            id,
		Parameters:    params,
		State:         state,
		ClassVars:     classVars,
		InitialRating: &ir,
		CurrentRating: &cr,
	}
}

// MarshalJSON encodes the document with its struct tags, exactly as the
// default encoding would. The flattened fields are emitted only when
// their pointers are set, which every variant's ExportState does; a
// zero-valued StateDoc encodes without them.
func (d StateDoc) MarshalJSON() ([]byte, error) {
	type alias StateDoc
	return json.Marshal(alias(d))
}

// checkKind fails with InvalidState if the document's declared type
// doesn't match the receiving variant.
func checkKind(op string, doc StateDoc, want Kind) error {
	if doc.Type != want {
		return eloteerr.New(eloteerr.InvalidState, op, "state document type "+string(doc.Type)+" does not match "+string(want))
	}
	return nil
}

// float64Field reads a field from a state document's Parameters/State
// map, preferring it, and falling back to a flattened top-level pointer
// when the structured value is absent. ok is false only when neither
// source has the field.
func float64Field(structured map[string]any, key string, flattened *float64) (float64, bool) {
	if structured != nil {
		if v, present := structured[key]; present {
			switch t := v.(type) {
			case float64:
				return t, true
			case int:
				return float64(t), true
			case json.Number:
				f, err := t.Float64()
				if err == nil {
					return f, true
				}
			}
		}
	}
	if flattened != nil {
		return *flattened, true
	}
	return 0, false
}

func intField(classVars map[string]any, key string) (int, bool) {
	if classVars == nil {
		return 0, false
	}
	v, present := classVars[key]
	if !present {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case json.Number:
		i, err := t.Int64()
		if err == nil {
			return int(i), true
		}
	}
	return 0, false
}

func newID() string {
	return uuid.New().String()
}
