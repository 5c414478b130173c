package competitor

import (
	"time"

	"elote-go/eloteerr"
	"elote-go/internal/ratingmath"
	"elote-go/internal/rlog"
)

// ECFConfig holds the English Chess Federation competitor's class-level
// tunables: the rolling window size, the linear expected-score scale,
// and the fixed rating shift applied on win/draw/loss.
type ECFConfig struct {
	NPeriod   int
	F         float64
	WinDelta  float64
	DrawDelta float64
	LossDelta float64
}

// DefaultECFConfig returns the ECF's published defaults: a 30-game
// rolling window, a linear expected-score scale of 120, and the
// familiar +50/0/-50 result shift.
func DefaultECFConfig() ECFConfig {
	return ECFConfig{NPeriod: 30, F: 120, WinDelta: 50, DrawDelta: 0, LossDelta: -50}
}

// ECF tracks a bounded window of recent opponent-relative ratings and
// reports their mean as the current rating. Before its first bout the
// window is empty and Rating falls back to the construction-time value.
type ECF struct {
	id            string
	createdAt     time.Time
	window        []float64
	initialRating float64
	minimumRating float64
	cfg           *ECFConfig
}

// NewECF constructs an ECF competitor with the default window and
// result-shift tunables.
func NewECF(initialRating float64) (*ECF, error) {
	cfg := DefaultECFConfig()
	return NewECFWithConfig(initialRating, DefaultMinimumRating, &cfg)
}

// NewECFWithConfig constructs an ECF competitor against an explicit
// (possibly shared) config and minimum rating floor.
func NewECFWithConfig(initialRating, minimumRating float64, cfg *ECFConfig) (*ECF, error) {
	if cfg == nil {
		c := DefaultECFConfig()
		cfg = &c
	}
	if initialRating < minimumRating {
		rlog.Warnf("ECF: initial_rating %.2f below minimum_rating %.2f", initialRating, minimumRating)
		return nil, eloteerr.New(eloteerr.InvalidParameter, "NewECF", "initial_rating below minimum_rating")
	}
	return &ECF{
		id:            newID(),
		createdAt:     time.Now(),
		initialRating: initialRating,
		minimumRating: minimumRating,
		cfg:           cfg,
	}, nil
}

func (e *ECF) Kind() Kind { return KindECF }

// Rating is the mean of the recorded window, or the construction-time
// value before any bout has been recorded.
func (e *ECF) Rating() float64 {
	if len(e.window) == 0 {
		return e.initialRating
	}
	sum := 0.0
	for _, v := range e.window {
		sum += v
	}
	return sum / float64(len(e.window))
}

func (e *ECF) push(v float64) {
	e.window = append(e.window, e.clampFloor(v))
	if len(e.window) > e.cfg.NPeriod {
		e.window = e.window[1:]
	}
}

// clampOpponentRating limits the opponent-relative rating fed into the
// window update to at most WinDelta away from self's own rating, so a
// single lopsided bout can't swing the window past what the result
// shift allows.
func (e *ECF) clampOpponentRating(selfRating, opponentsRating float64) float64 {
	limit := e.cfg.WinDelta
	if opponentsRating-selfRating > limit {
		return selfRating + limit
	}
	if selfRating-opponentsRating > limit {
		return selfRating - limit
	}
	return opponentsRating
}

func (e *ECF) ExpectedScore(other Competitor) (float64, error) {
	o, ok := other.(*ECF)
	if !ok {
		return 0, eloteerr.New(eloteerr.TypeMismatch, "ECF.ExpectedScore", "other competitor is not an ECF")
	}
	return ratingmath.ECFLinear(e.Rating(), o.Rating(), e.cfg.F), nil
}

func (e *ECF) Beat(other Competitor) error {
	o, ok := other.(*ECF)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "ECF.Beat", "other competitor is not an ECF")
	}
	selfRating, oppRating := e.Rating(), o.Rating()
	clampedOpp := e.clampOpponentRating(selfRating, oppRating)

	e.push(clampedOpp + e.cfg.WinDelta)
	o.push(o.clampOpponentRating(oppRating, selfRating) + e.cfg.LossDelta)
	return nil
}

func (e *ECF) LostTo(other Competitor) error {
	o, ok := other.(*ECF)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "ECF.LostTo", "other competitor is not an ECF")
	}
	return o.Beat(e)
}

func (e *ECF) Tied(other Competitor) error {
	o, ok := other.(*ECF)
	if !ok {
		return eloteerr.New(eloteerr.TypeMismatch, "ECF.Tied", "other competitor is not an ECF")
	}
	selfRating, oppRating := e.Rating(), o.Rating()
	clampedOpp := e.clampOpponentRating(selfRating, oppRating)

	e.push(clampedOpp + e.cfg.DrawDelta)
	o.push(o.clampOpponentRating(oppRating, selfRating) + e.cfg.DrawDelta)
	return nil
}

func (e *ECF) Reset() {
	e.window = nil
}

func (e *ECF) clampFloor(rating float64) float64 {
	if rating < e.minimumRating {
		return e.minimumRating
	}
	return rating
}

func (e *ECF) ExportState() StateDoc {
	window := make([]any, len(e.window))
	for i, v := range e.window {
		window[i] = v
	}
	return newStateDoc(KindECF, e.id, e.createdAt, e.initialRating, e.Rating(),
		map[string]any{
			"initial_rating": e.initialRating,
			"minimum_rating": e.minimumRating,
		},
		map[string]any{
			"rating": e.Rating(),
			"window": window,
		},
		map[string]any{
			"n_period":   e.cfg.NPeriod,
			"f":          e.cfg.F,
			"win_delta":  e.cfg.WinDelta,
			"draw_delta": e.cfg.DrawDelta,
			"loss_delta": e.cfg.LossDelta,
		},
	)
}

func (e *ECF) LoadState(doc StateDoc) error {
	if err := checkKind("ECF.LoadState", doc, KindECF); err != nil {
		return err
	}
	minRating := e.minimumRating
	if v, ok := float64Field(doc.Parameters, "minimum_rating", nil); ok {
		minRating = v
	}
	rating, ok := float64Field(doc.State, "rating", doc.CurrentRating)
	if !ok {
		return eloteerr.New(eloteerr.InvalidState, "ECF.LoadState", "missing state.rating")
	}
	if rating < minRating {
		rlog.Warnf("ECF.LoadState: rating %.2f below minimum_rating %.2f", rating, minRating)
		return eloteerr.New(eloteerr.InvalidState, "ECF.LoadState", "rating below minimum_rating")
	}
	if n, ok := intField(doc.ClassVars, "n_period"); ok && n > 0 {
		e.cfg.NPeriod = n
	}

	e.id = doc.ID
	e.minimumRating = minRating
	e.initialRating = rating
	e.window = nil
	if raw, ok := doc.State["window"]; ok {
		if items, ok := raw.([]any); ok {
			window := make([]float64, 0, len(items))
			for _, v := range items {
				if f, ok := toFloat(v); ok {
					window = append(window, f)
				}
			}
			e.window = window
		}
	}
	return nil
}
