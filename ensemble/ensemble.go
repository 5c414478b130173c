// Package ensemble composes several Competitors into one, blending
// their expected scores by weight and dispatching updates to each
// component pairwise. It is intentionally thin: no new rating math, just
// weighted delegation.
package ensemble

import (
	"time"

	"github.com/google/uuid"

	"elote-go/competitor"
	"elote-go/eloteerr"
)

// KindEnsemble is the Ensemble's StateDoc "type" tag.
const KindEnsemble competitor.Kind = "EnsembleCompetitor"

// Component pairs a Competitor with its blend weight.
type Component struct {
	Competitor competitor.Competitor
	Weight     float64
}

// Ensemble is a weighted combination of Competitors. ExpectedScore
// blends component expected scores by weight; Beat/Tied/LostTo dispatch
// to each component pair in order.
type Ensemble struct {
	id         string
	createdAt  time.Time
	components []Component
}

// New builds an Ensemble from components whose weights must sum to 1
// within a small tolerance.
func New(components []Component) (*Ensemble, error) {
	if len(components) == 0 {
		return nil, eloteerr.New(eloteerr.InvalidParameter, "ensemble.New", "at least one component is required")
	}
	sum := 0.0
	for _, c := range components {
		sum += c.Weight
	}
	const eps = 1e-6
	if sum < 1-eps || sum > 1+eps {
		return nil, eloteerr.New(eloteerr.InvalidParameter, "ensemble.New", "component weights must sum to 1")
	}
	return &Ensemble{
		id:         uuid.New().String(),
		createdAt:  time.Now(),
		components: append([]Component(nil), components...),
	}, nil
}

func (e *Ensemble) Kind() competitor.Kind { return KindEnsemble }

// Rating is the weighted mean of the component ratings. It has no
// intrinsic scale — components may be on different rating scales
// entirely — but is useful for a leaderboard ordering.
func (e *Ensemble) Rating() float64 {
	sum := 0.0
	for _, c := range e.components {
		sum += c.Weight * c.Competitor.Rating()
	}
	return sum
}

func (e *Ensemble) matchOther(op string, other competitor.Competitor) (*Ensemble, error) {
	o, ok := other.(*Ensemble)
	if !ok {
		return nil, eloteerr.New(eloteerr.TypeMismatch, op, "other competitor is not an Ensemble")
	}
	if len(o.components) != len(e.components) {
		return nil, eloteerr.New(eloteerr.TypeMismatch, op, "ensembles have a different number of components")
	}
	return o, nil
}

func (e *Ensemble) ExpectedScore(other competitor.Competitor) (float64, error) {
	o, err := e.matchOther("Ensemble.ExpectedScore", other)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for i, c := range e.components {
		es, err := c.Competitor.ExpectedScore(o.components[i].Competitor)
		if err != nil {
			return 0, err
		}
		total += c.Weight * es
	}
	return total, nil
}

func (e *Ensemble) Beat(other competitor.Competitor) error {
	o, err := e.matchOther("Ensemble.Beat", other)
	if err != nil {
		return err
	}
	for i, c := range e.components {
		if err := c.Competitor.Beat(o.components[i].Competitor); err != nil {
			return err
		}
	}
	return nil
}

func (e *Ensemble) LostTo(other competitor.Competitor) error {
	o, err := e.matchOther("Ensemble.LostTo", other)
	if err != nil {
		return err
	}
	return o.Beat(e)
}

func (e *Ensemble) Tied(other competitor.Competitor) error {
	o, err := e.matchOther("Ensemble.Tied", other)
	if err != nil {
		return err
	}
	for i, c := range e.components {
		if err := c.Competitor.Tied(o.components[i].Competitor); err != nil {
			return err
		}
	}
	return nil
}

func (e *Ensemble) Reset() {
	for _, c := range e.components {
		c.Competitor.Reset()
	}
}

// ExportState serializes each component's own StateDoc alongside its
// weight, nested under this Ensemble's envelope. Of the flattened
// fields only current_rating is set; an Ensemble has no initial rating
// of its own, so initial_rating is omitted.
func (e *Ensemble) ExportState() competitor.StateDoc {
	subStates := make([]any, len(e.components))
	weights := make([]any, len(e.components))
	for i, c := range e.components {
		subStates[i] = c.Competitor.ExportState()
		weights[i] = c.Weight
	}
	rating := e.Rating()
	return competitor.StateDoc{
		Type:      KindEnsemble,
		Version:   competitor.StateDocVersion,
		CreatedAt: e.createdAt.Unix(),
		ID:        e.id,
		Parameters: map[string]any{
			"weights": weights,
		},
		State: map[string]any{
			"components": subStates,
		},
		ClassVars:     map[string]any{},
		CurrentRating: &rating,
	}
}

// LoadState is unsupported: an Ensemble's components carry their own
// heterogeneous state and are reloaded individually through their own
// LoadState, not through the Ensemble's envelope.
func (e *Ensemble) LoadState(_ competitor.StateDoc) error {
	return eloteerr.New(eloteerr.InvalidState, "Ensemble.LoadState", "ensembles reload component-by-component, not as a single document")
}
