package competitor

import (
	"time"

	"elote-go/eloteerr"
	"elote-go/internal/ratingmath"
	"elote-go/internal/rlog"
)

// DWZConfig holds the Deutsche Wertungszahl competitor's class-level
// tunable: the additive constant used by the development-coefficient
// schedule (10 in the published tables).
type DWZConfig struct {
	J float64
}

// DefaultDWZConfig returns DWZ's published default.
func DefaultDWZConfig() DWZConfig { return DWZConfig{J: 10} }

// DWZ implements the Deutsche Wertungszahl rating system: a logistic
// expected score identical in form to Elo's, but with a per-bout
// development coefficient E that adapts to the competitor's rating and
// experience instead of a fixed K.
type DWZ struct {
	id            string
	createdAt     time.Time
	rating        float64
	initialRating float64
	minimumRating float64
	matchCount    int // effective match count, "A" in the spec
	cfg           *DWZConfig
}

// NewDWZ constructs a DWZ competitor with the default development
// constant and rating floor.
func NewDWZ(initialRating float64) (*DWZ, error) {
	cfg := DefaultDWZConfig()
	return NewDWZWithConfig(initialRating, DefaultMinimumRating, &cfg)
}

// NewDWZWithConfig constructs a DWZ competitor against an explicit
// (possibly shared) config and minimum rating floor.
func NewDWZWithConfig(initialRating, minimumRating float64, cfg *DWZConfig) (*DWZ, error) {
	if cfg == nil {
		c := DefaultDWZConfig()
		cfg = &c
	}
	if initialRating < minimumRating {
		rlog.Warnf("DWZ: initial_rating %.2f below minimum_rating %.2f", initialRating, minimumRating)
		return nil, eloteerr.New(eloteerr.InvalidParameter, "NewDWZ", "initial_rating below minimum_rating")
	}
	return &DWZ{
		id:            newID(),
		createdAt:     time.Now(),
		rating:        initialRating,
		initialRating: initialRating,
		minimumRating: minimumRating,
		cfg:           cfg,
	}, nil
}

func (d *DWZ) Kind() Kind          { return KindDWZ }
func (d *DWZ) Rating() float64     { return d.rating }
func (d *DWZ) MatchCount() int     { return d.matchCount }

func (d *DWZ) ExpectedScore(other Competitor) (float64, error) {
	o, ok := other.(*DWZ)
	if !ok {
		return 0, eloteerr.New(eloteerr.TypeMismatch, "DWZ.ExpectedScore", "other competitor is not a DWZ")
	}
	return ratingmath.Logistic400(d.rating, o.rating), nil
}

// developmentCoefficient returns this competitor's per-bout E.
func (d *DWZ) developmentCoefficient() float64 {
	return ratingmath.DWZDevelopmentCoefficient(d.rating, d.matchCount, d.cfg.J)
}

func (d *DWZ) newRating(other *DWZ, expected, score float64) float64 {
	e := d.developmentCoefficient()
	return d.rating + (800/(e+float64(d.matchCount)))*(score-expected)
}

func (d *DWZ) Beat(other Competitor) error {
	o, ok := other.(*DWZ)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "DWZ.Beat", "other competitor is not a DWZ")
	}
	selfExpected, _ := d.ExpectedScore(o)
	oppExpected, _ := o.ExpectedScore(d)

	selfRating := d.newRating(o, selfExpected, 1)
	oppRating := o.newRating(d, oppExpected, 0)

	d.rating = d.clampFloor(selfRating)
	d.matchCount++
	o.rating = o.clampFloor(oppRating)
	o.matchCount++
	return nil
}

func (d *DWZ) LostTo(other Competitor) error {
	o, ok := other.(*DWZ)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "DWZ.LostTo", "other competitor is not a DWZ")
	}
	return o.Beat(d)
}

func (d *DWZ) Tied(other Competitor) error {
	o, ok := other.(*DWZ)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "DWZ.Tied", "other competitor is not a DWZ")
	}
	selfExpected, _ := d.ExpectedScore(o)
	oppExpected, _ := o.ExpectedScore(d)

	selfRating := d.newRating(o, selfExpected, 0.5)
	oppRating := o.newRating(d, oppExpected, 0.5)

	d.rating = d.clampFloor(selfRating)
	d.matchCount++
	o.rating = o.clampFloor(oppRating)
	o.matchCount++
	return nil
}

func (d *DWZ) Reset() {
	d.rating = d.initialRating
	d.matchCount = 0
}

func (d *DWZ) clampFloor(rating float64) float64 {
	if rating < d.minimumRating {
		return d.minimumRating
	}
	return rating
}

func (d *DWZ) ExportState() StateDoc {
	return newStateDoc(KindDWZ, d.id, d.createdAt, d.initialRating, d.rating,
		map[string]any{
			"initial_rating": d.initialRating,
			"minimum_rating": d.minimumRating,
		},
		map[string]any{
			"rating":      d.rating,
			"match_count": d.matchCount,
		},
		map[string]any{
			"j": d.cfg.J,
		},
	)
}

func (d *DWZ) LoadState(doc StateDoc) error {
	if err := checkKind("DWZ.LoadState", doc, KindDWZ); err != nil {
		return err
	}
	minRating := d.minimumRating
	if v, ok := float64Field(doc.Parameters, "minimum_rating", nil); ok {
		minRating = v
	}
	rating, ok := float64Field(doc.State, "rating", doc.CurrentRating)
	if !ok {
		return eloteerr.New(eloteerr.InvalidState, "DWZ.LoadState", "missing state.rating")
	}
	if rating < minRating {
		rlog.Warnf("DWZ.LoadState: rating %.2f below minimum_rating %.2f", rating, minRating)
		return eloteerr.New(eloteerr.InvalidState, "DWZ.LoadState", "rating below minimum_rating")
	}
	initialRating, ok := float64Field(doc.Parameters, "initial_rating", doc.InitialRating)
	if !ok {
		initialRating = rating
	}
	matchCount, _ := intField(doc.State, "match_count")
	if j, ok := doc.ClassVars["j"]; ok {
		if jf, ok := toFloat(j); ok {
			d.cfg.J = jf
		}
	}

	d.id = doc.ID
	d.minimumRating = minRating
	d.initialRating = initialRating
	d.rating = rating
	d.matchCount = matchCount
	return nil
}
