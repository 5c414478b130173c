package competitor

import (
	"time"

	"elote-go/eloteerr"
	"elote-go/internal/ratingmath"
	"elote-go/internal/rlog"
)

// EloConfig holds Elo's class-level tunable. It is shared by pointer
// across every competitor an arena or a caller constructs from the same
// config, so mutating KFactor affects every live Elo built from it —
// without reaching for a package-global variable.
type EloConfig struct {
	KFactor float64
}

// DefaultEloConfig returns Elo's published defaults.
func DefaultEloConfig() EloConfig { return EloConfig{KFactor: 32} }

// Elo is the classic pairwise rating system: a single scalar rating
// updated by K * (actual - expected).
type Elo struct {
	id            string
	createdAt     time.Time
	rating        float64
	initialRating float64
	minimumRating float64
	cfg           *EloConfig
}

// NewElo constructs an Elo competitor with the default K-factor (32) and
// rating floor (100). initialRating below the floor fails with
// InvalidParameter.
func NewElo(initialRating float64) (*Elo, error) {
	cfg := DefaultEloConfig()
	return NewEloWithConfig(initialRating, DefaultMinimumRating, &cfg)
}

// NewEloWithConfig constructs an Elo competitor against an explicit
// (possibly shared) config and minimum rating floor.
func NewEloWithConfig(initialRating, minimumRating float64, cfg *EloConfig) (*Elo, error) {
	if cfg == nil {
		c := DefaultEloConfig()
		cfg = &c
	}
	if initialRating < minimumRating {
		rlog.Warnf("Elo: initial_rating %.2f below minimum_rating %.2f", initialRating, minimumRating)
		return nil, eloteerr.New(eloteerr.InvalidParameter, "NewElo", "initial_rating below minimum_rating")
	}
	return &Elo{
		id:            newID(),
		createdAt:     time.Now(),
		rating:        initialRating,
		initialRating: initialRating,
		minimumRating: minimumRating,
		cfg:           cfg,
	}, nil
}

func (e *Elo) Kind() Kind              { return KindElo }
func (e *Elo) Rating() float64         { return e.rating }
func (e *Elo) KFactor() float64        { return e.cfg.KFactor }
func (e *Elo) MinimumRating() float64  { return e.minimumRating }

func (e *Elo) ExpectedScore(other Competitor) (float64, error) {
	o, ok := other.(*Elo)
	if !ok {
		return 0, eloteerr.New(eloteerr.TypeMismatch, "Elo.ExpectedScore", "other competitor is not an Elo")
	}
	return ratingmath.Logistic400(e.rating, o.rating), nil
}

func (e *Elo) Beat(other Competitor) error {
	o, ok := other.(*Elo)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "Elo.Beat", "other competitor is not an Elo")
	}
	winEs := ratingmath.Logistic400(e.rating, o.rating)
	loseEs := ratingmath.Logistic400(o.rating, e.rating)

	e.rating = e.clampFloor(e.rating + e.cfg.KFactor*(1-winEs))
	o.rating = o.clampFloor(o.rating + o.cfg.KFactor*(0-loseEs))
	return nil
}

func (e *Elo) LostTo(other Competitor) error {
	o, ok := other.(*Elo)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "Elo.LostTo", "other competitor is not an Elo")
	}
	return o.Beat(e)
}

func (e *Elo) Tied(other Competitor) error {
	o, ok := other.(*Elo)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "Elo.Tied", "other competitor is not an Elo")
	}
	winEs := ratingmath.Logistic400(e.rating, o.rating)
	loseEs := ratingmath.Logistic400(o.rating, e.rating)

	e.rating = e.clampFloor(e.rating + e.cfg.KFactor*(0.5-winEs))
	o.rating = o.clampFloor(o.rating + o.cfg.KFactor*(0.5-loseEs))
	return nil
}

func (e *Elo) Reset() {
	e.rating = e.initialRating
}

func (e *Elo) clampFloor(rating float64) float64 {
	if rating < e.minimumRating {
		return e.minimumRating
	}
	return rating
}

func (e *Elo) ExportState() StateDoc {
	return newStateDoc(KindElo, e.id, e.createdAt, e.initialRating, e.rating,
		map[string]any{
			"initial_rating": e.initialRating,
			"minimum_rating": e.minimumRating,
		},
		map[string]any{
			"rating": e.rating,
		},
		map[string]any{
			"k_factor": e.cfg.KFactor,
		},
	)
}

func (e *Elo) LoadState(doc StateDoc) error {
	if err := checkKind("Elo.LoadState", doc, KindElo); err != nil {
		return err
	}
	minRating := e.minimumRating
	if v, ok := float64Field(doc.Parameters, "minimum_rating", nil); ok {
		minRating = v
	}
	rating, ok := float64Field(doc.State, "rating", doc.CurrentRating)
	if !ok {
		return eloteerr.New(eloteerr.InvalidState, "Elo.LoadState", "missing state.rating")
	}
	if rating < minRating {
		rlog.Warnf("Elo.LoadState: rating %.2f below minimum_rating %.2f", rating, minRating)
		return eloteerr.New(eloteerr.InvalidState, "Elo.LoadState", "rating below minimum_rating")
	}
	initialRating, ok := float64Field(doc.Parameters, "initial_rating", doc.InitialRating)
	if !ok {
		initialRating = rating
	}
	if k, ok := doc.ClassVars["k_factor"]; ok {
		if kf, ok := toFloat(k); ok {
			e.cfg.KFactor = kf
		}
	}

	e.id = doc.ID
	e.minimumRating = minRating
	e.initialRating = initialRating
	e.rating = rating
	return nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	}
	return 0, false
}
