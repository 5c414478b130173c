// Package history records the outcome of every bout an arena dispatches
// and turns that record into confusion-matrix and threshold-search
// statistics.
package history

import (
	"math/rand"

	"elote-go/eloteerr"
)

// Outcome is the realized result of a bout, as decided by an oracle.
type Outcome int

const (
	// OutcomeNone means the oracle declined to decide (draw or
	// indeterminate input).
	OutcomeNone Outcome = iota
	OutcomeLeft
	OutcomeRight
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLeft:
		return "left"
	case OutcomeRight:
		return "right"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Bout is an immutable record of one dispatched matchup.
type Bout struct {
	LeftID                string
	RightID               string
	PredictedProbLeftWins float64
	Outcome               Outcome
	Attributes            map[string]any
}

// History is an append-only sequence of Bout records.
type History struct {
	bouts []Bout
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Append records one bout. It never mutates or removes prior entries.
func (h *History) Append(b Bout) {
	h.bouts = append(h.bouts, b)
}

// Bouts returns the recorded bouts in append order. The returned slice
// is a copy; mutating it does not affect the History.
func (h *History) Bouts() []Bout {
	out := make([]Bout, len(h.bouts))
	copy(out, h.bouts)
	return out
}

// Len reports the number of recorded bouts.
func (h *History) Len() int {
	return len(h.bouts)
}

// Clear discards every recorded bout.
func (h *History) Clear() {
	h.bouts = nil
}

// ConfusionMatrix classifies every recorded bout against the decision
// band (lo, hi): p >= hi predicts a left win, p <= lo predicts a right
// win, and everything in between is a "do nothing". Draws and
// OutcomeNone results are never counted as correct predictions; a
// OutcomeNone result inside a definite-prediction band always counts as
// a do-nothing regardless of where p falls.
func (h *History) ConfusionMatrix(lo, hi float64) (tp, fp, tn, fn, doNothing int, err error) {
	if lo < 0 || hi > 1 || lo > hi {
		return 0, 0, 0, 0, 0, eloteerr.New(eloteerr.InvalidThresholds, "History.ConfusionMatrix", "thresholds must satisfy 0 <= lo <= hi <= 1")
	}
	for _, b := range h.bouts {
		switch {
		case b.Outcome == OutcomeNone:
			doNothing++
		case b.PredictedProbLeftWins >= hi:
			if b.Outcome == OutcomeLeft {
				tp++
			} else {
				fp++
			}
		case b.PredictedProbLeftWins <= lo:
			if b.Outcome == OutcomeRight {
				tn++
			} else {
				fn++
			}
		default:
			doNothing++
		}
	}
	return tp, fp, tn, fn, doNothing, nil
}

// SearchResult is one scored (lo, hi) sample from RandomSearch.
type SearchResult struct {
	Lo, Hi   float64
	Accuracy float64
}

func accuracy(tp, fp, tn, fn, doNothing int) float64 {
	total := tp + fp + tn + fn + doNothing
	if total == 0 {
		return 0
	}
	return float64(tp+tn) / float64(total)
}

// RandomSearch samples trials (lo, hi) pairs uniformly from [0,1]^2 with
// lo <= hi, scores each by accuracy = (tp+tn)/total, and returns the
// best-scoring sample. It is deterministic for a fixed seed.
func (h *History) RandomSearch(trials int, seed int64) (SearchResult, error) {
	if trials <= 0 {
		return SearchResult{}, eloteerr.New(eloteerr.InvalidParameter, "History.RandomSearch", "trials must be positive")
	}
	rng := rand.New(rand.NewSource(seed))
	var best SearchResult
	haveBest := false
	for i := 0; i < trials; i++ {
		a, b := rng.Float64(), rng.Float64()
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		tp, fp, tn, fn, doNothing, err := h.ConfusionMatrix(lo, hi)
		if err != nil {
			return SearchResult{}, err
		}
		acc := accuracy(tp, fp, tn, fn, doNothing)
		if !haveBest || acc > best.Accuracy {
			best = SearchResult{Lo: lo, Hi: hi, Accuracy: acc}
			haveBest = true
		}
	}
	return best, nil
}

// Report is the summary produced by ReportResults.
type Report struct {
	Total                        int
	TruePositive, FalsePositive  int
	TrueNegative, FalseNegative  int
	DoNothing                    int
	AccuracyAtDefaultThresholds  float64
}

// ReportResults summarizes the full history at the default (0.5, 0.5)
// decision band.
func (h *History) ReportResults() (Report, error) {
	tp, fp, tn, fn, doNothing, err := h.ConfusionMatrix(0.5, 0.5)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Total:                       len(h.bouts),
		TruePositive:                tp,
		FalsePositive:               fp,
		TrueNegative:                tn,
		FalseNegative:               fn,
		DoNothing:                   doNothing,
		AccuracyAtDefaultThresholds: accuracy(tp, fp, tn, fn, doNothing),
	}, nil
}
