package competitor

import (
	"math"
	"time"

	"elote-go/eloteerr"
	"elote-go/internal/ratingmath"
	"elote-go/internal/rlog"
)

// GlickoRDMax is the ceiling Decay and construction both enforce: an
// idle competitor's uncertainty never grows past the "know nothing"
// starting deviation.
const GlickoRDMax = 350.0

// GlickoConfig holds Glicko-1's class-level tunable: the decay constant
// used by Decay to grow RD during inactivity.
type GlickoConfig struct {
	C float64
}

// DefaultGlickoConfig returns Glicko's published defaults. C is chosen
// so a competitor idle for roughly a year of monthly rating periods
// drifts back toward the initial RD ceiling, per the original Glicko
// paper's worked example.
func DefaultGlickoConfig() GlickoConfig { return GlickoConfig{C: 34.6} }

// Glicko is a Glicko-1 (per-bout formulation) competitor: a rating plus
// a rating deviation (RD) tracking confidence in that rating.
type Glicko struct {
	id            string
	createdAt     time.Time
	rating        float64
	rd            float64
	initialRating float64
	initialRD     float64
	minimumRating float64
	lastActivity  *time.Time
	cfg           *GlickoConfig
}

// NewGlicko constructs a Glicko competitor with the default decay
// constant and rating floor.
func NewGlicko(initialRating, initialRD float64) (*Glicko, error) {
	cfg := DefaultGlickoConfig()
	return NewGlickoWithConfig(initialRating, initialRD, DefaultMinimumRating, &cfg)
}

// NewGlickoWithConfig constructs a Glicko competitor against an explicit
// (possibly shared) config and minimum rating floor.
func NewGlickoWithConfig(initialRating, initialRD, minimumRating float64, cfg *GlickoConfig) (*Glicko, error) {
	if cfg == nil {
		c := DefaultGlickoConfig()
		cfg = &c
	}
	if initialRating < minimumRating {
		rlog.Warnf("Glicko: initial_rating %.2f below minimum_rating %.2f", initialRating, minimumRating)
		return nil, eloteerr.New(eloteerr.InvalidParameter, "NewGlicko", "initial_rating below minimum_rating")
	}
	if initialRD <= 0 || initialRD > GlickoRDMax {
		return nil, eloteerr.New(eloteerr.InvalidParameter, "NewGlicko", "initial_rd out of (0, 350] range")
	}
	return &Glicko{
		id:            newID(),
		createdAt:     time.Now(),
		rating:        initialRating,
		rd:            initialRD,
		initialRating: initialRating,
		initialRD:     initialRD,
		minimumRating: minimumRating,
		cfg:           cfg,
	}, nil
}

func (g *Glicko) Kind() Kind      { return KindGlicko }
func (g *Glicko) Rating() float64 { return g.rating }
func (g *Glicko) RD() float64     { return g.rd }

func (g *Glicko) ExpectedScore(other Competitor) (float64, error) {
	o, ok := other.(*Glicko)
	if !ok {
		return 0, eloteerr.New(eloteerr.TypeMismatch, "Glicko.ExpectedScore", "other competitor is not a Glicko")
	}
	return ratingmath.GlickoExpected(g.rating, o.rating, o.rd), nil
}

// update applies the shared Glicko-1 per-bout formula for a self-score s
// against opponent o, returning the new (rating, rd) pair for self.
func (g *Glicko) update(o *Glicko, s float64) (float64, float64) {
	e := ratingmath.GlickoExpected(g.rating, o.rating, o.rd)
	gOpp := ratingmath.GFunction(o.rd)
	q := ratingmath.GlickoQ

	dSquared := 1.0 / (q * q * gOpp * gOpp * e * (1 - e))
	newRating := g.rating + (q/(1/(g.rd*g.rd)+1/dSquared))*gOpp*(s-e)
	newRD := math.Sqrt(1.0 / (1/(g.rd*g.rd) + 1/dSquared))
	return newRating, newRD
}

func (g *Glicko) apply(newRating, newRD float64) {
	g.rating = g.clampRatingFloor(newRating)
	g.rd = ratingmath.Clamp(newRD, 1e-6, GlickoRDMax)
	now := time.Now()
	g.lastActivity = &now
}

func (g *Glicko) Beat(other Competitor) error {
	o, ok := other.(*Glicko)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "Glicko.Beat", "other competitor is not a Glicko")
	}
	selfR, selfRD := g.update(o, 1)
	oppR, oppRD := o.update(g, 0)
	g.apply(selfR, selfRD)
	o.apply(oppR, oppRD)
	return nil
}

func (g *Glicko) LostTo(other Competitor) error {
	o, ok := other.(*Glicko)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "Glicko.LostTo", "other competitor is not a Glicko")
	}
	return o.Beat(g)
}

func (g *Glicko) Tied(other Competitor) error {
	o, ok := other.(*Glicko)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "Glicko.Tied", "other competitor is not a Glicko")
	}
	selfR, selfRD := g.update(o, 0.5)
	oppR, oppRD := o.update(g, 0.5)
	g.apply(selfR, selfRD)
	o.apply(oppR, oppRD)
	return nil
}

// Decay applies the inactivity step distinct from Beat/Tied: RD grows
// toward the ceiling as sqrt(RD^2 + c^2*deltaPeriods^2), rating
// unchanged. Call this once per rating period a competitor sits idle.
func (g *Glicko) Decay(deltaPeriods float64) {
	g.rd = math.Min(math.Sqrt(g.rd*g.rd+g.cfg.C*g.cfg.C*deltaPeriods*deltaPeriods), GlickoRDMax)
}

func (g *Glicko) Reset() {
	g.rating = g.initialRating
	g.rd = g.initialRD
	g.lastActivity = nil
}

func (g *Glicko) clampRatingFloor(rating float64) float64 {
	if rating < g.minimumRating {
		return g.minimumRating
	}
	return rating
}

func (g *Glicko) ExportState() StateDoc {
	state := map[string]any{
		"rating": g.rating,
		"rd":     g.rd,
	}
	if g.lastActivity != nil {
		state["last_activity"] = g.lastActivity.Unix()
	}
	return newStateDoc(KindGlicko, g.id, g.createdAt, g.initialRating, g.rating,
		map[string]any{
			"initial_rating": g.initialRating,
			"initial_rd":     g.initialRD,
			"minimum_rating": g.minimumRating,
		},
		state,
		map[string]any{
			"c": g.cfg.C,
		},
	)
}

func (g *Glicko) LoadState(doc StateDoc) error {
	if err := checkKind("Glicko.LoadState", doc, KindGlicko); err != nil {
		return err
	}
	minRating := g.minimumRating
	if v, ok := float64Field(doc.Parameters, "minimum_rating", nil); ok {
		minRating = v
	}
	rating, ok := float64Field(doc.State, "rating", doc.CurrentRating)
	if !ok {
		return eloteerr.New(eloteerr.InvalidState, "Glicko.LoadState", "missing state.rating")
	}
	if rating < minRating {
		rlog.Warnf("Glicko.LoadState: rating %.2f below minimum_rating %.2f", rating, minRating)
		return eloteerr.New(eloteerr.InvalidState, "Glicko.LoadState", "rating below minimum_rating")
	}
	rd, ok := float64Field(doc.State, "rd", nil)
	if !ok {
		return eloteerr.New(eloteerr.InvalidState, "Glicko.LoadState", "missing state.rd")
	}
	initialRating, ok := float64Field(doc.Parameters, "initial_rating", doc.InitialRating)
	if !ok {
		initialRating = rating
	}
	initialRD, ok := float64Field(doc.Parameters, "initial_rd", nil)
	if !ok {
		initialRD = rd
	}
	if c, ok := doc.ClassVars["c"]; ok {
		if cf, ok := toFloat(c); ok {
			g.cfg.C = cf
		}
	}

	g.id = doc.ID
	g.minimumRating = minRating
	g.initialRating = initialRating
	g.initialRD = initialRD
	g.rating = rating
	g.rd = rd
	return nil
}
