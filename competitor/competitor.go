// Package competitor implements the rating-state variants Elo, Glicko,
// ECF, and DWZ behind a single Competitor capability, plus the
// self-describing state document each variant serializes to.
package competitor

// Kind tags a competitor's concrete variant. It doubles as the "type"
// field of a serialized StateDoc.
type Kind string

const (
	KindElo    Kind = "EloCompetitor"
	KindGlicko Kind = "GlickoCompetitor"
	KindECF    Kind = "ECFCompetitor"
	KindDWZ    Kind = "DWZCompetitor"
)

// DefaultMinimumRating is the floor every variant enforces unless a
// caller supplies a different one at construction.
const DefaultMinimumRating = 100.0

// Competitor is the capability every rating variant exposes. Callers
// drive pairwise bouts through this interface without knowing which
// concrete variant they hold; a mismatched pairing fails with a
// TypeMismatch error rather than panicking.
type Competitor interface {
	// Kind identifies the concrete variant, used by the codec and by
	// the arena's type checks.
	Kind() Kind
	// Rating returns the competitor's current scalar rating.
	Rating() float64
	// ExpectedScore returns this competitor's probability of beating
	// other, in [0,1]. Fails with TypeMismatch if other is a different
	// variant.
	ExpectedScore(other Competitor) (float64, error)
	// Beat registers a win of this competitor over other, mutating
	// both sides.
	Beat(other Competitor) error
	// LostTo registers a loss of this competitor to other; equivalent
	// to other.Beat(this).
	LostTo(other Competitor) error
	// Tied registers a draw, mutating both sides symmetrically.
	Tied(other Competitor) error
	// Reset restores construction-time state.
	Reset()
	// ExportState serializes the competitor to a portable StateDoc.
	ExportState() StateDoc
	// LoadState overwrites this competitor's dynamic state from a
	// StateDoc, kind-checked against Kind().
	LoadState(doc StateDoc) error
}
