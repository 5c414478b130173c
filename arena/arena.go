// Package arena drives many bouts against an oracle, materializing
// competitors lazily and recording a full prediction/outcome history for
// downstream confusion-matrix analysis.
package arena

import (
	"sort"

	"elote-go/competitor"
	"elote-go/eloteerr"
	"elote-go/history"
)

// Oracle decides the outcome of a matchup between leftID and rightID.
// It returns a pointer to true if left won, a pointer to false if right
// won, or nil if the oracle declined to decide (draw or indeterminate).
type Oracle func(leftID, rightID string, attributes map[string]any) *bool

// Matchup is one pairing to dispatch through Tournament.
type Matchup struct {
	LeftID, RightID string
	Attributes      map[string]any
}

// DrawPolicy controls what Tournament does when the Oracle returns nil.
type DrawPolicy int

const (
	// DrawIsNone records the bout with OutcomeNone and leaves both
	// competitors unmutated. This is the default policy.
	DrawIsNone DrawPolicy = iota
	// DrawIsTie calls Tied on both competitors and records OutcomeDraw.
	DrawIsTie
)

// Factory builds competitors of one configured variant and exposes its
// class-level tunables for the arena's SetCompetitorClassVar.
type Factory interface {
	New() (competitor.Competitor, error)
	Kind() competitor.Kind
	SetClassVar(name string, value float64) error
}

// LambdaArena maps opaque identifiers to lazily-created competitors of a
// single configured variant, dispatches bouts in order, and accumulates
// a bout History.
type LambdaArena struct {
	factory     Factory
	oracle      Oracle
	drawPolicy  DrawPolicy
	competitors map[string]competitor.Competitor
	order       []string
	hist        *history.History
}

// New builds a LambdaArena from a Factory and an Oracle. Competitors are
// created lazily on first reference to an identifier.
func New(factory Factory, oracle Oracle) *LambdaArena {
	return &LambdaArena{
		factory:     factory,
		oracle:      oracle,
		drawPolicy:  DrawIsNone,
		competitors: make(map[string]competitor.Competitor),
		hist:        history.New(),
	}
}

// SetDrawPolicy configures what happens when the Oracle returns nil.
func (a *LambdaArena) SetDrawPolicy(p DrawPolicy) {
	a.drawPolicy = p
}

// SetCompetitorClassVar mutates the configured variant's class-level
// tunable for every live and future competitor built by this arena's
// Factory.
func (a *LambdaArena) SetCompetitorClassVar(name string, value float64) error {
	return a.factory.SetClassVar(name, value)
}

// History returns the arena's recorded bout history.
func (a *LambdaArena) History() *history.History {
	return a.hist
}

// ClearHistory discards every recorded bout without touching competitor
// state.
func (a *LambdaArena) ClearHistory() {
	a.hist.Clear()
}

func (a *LambdaArena) getOrCreate(id string) (competitor.Competitor, error) {
	if c, ok := a.competitors[id]; ok {
		return c, nil
	}
	c, err := a.factory.New()
	if err != nil {
		return nil, eloteerr.Wrap(eloteerr.InvalidParameter, "LambdaArena.getOrCreate", err)
	}
	a.competitors[id] = c
	a.order = append(a.order, id)
	return c, nil
}

// Tournament dispatches each matchup in order: it materializes either
// side's competitor if absent, computes the pre-mutation expected score,
// consults the Oracle, applies the resulting update, and appends a Bout
// record to the arena's History.
func (a *LambdaArena) Tournament(matchups []Matchup) error {
	for _, m := range matchups {
		left, err := a.getOrCreate(m.LeftID)
		if err != nil {
			return err
		}
		right, err := a.getOrCreate(m.RightID)
		if err != nil {
			return err
		}

		p, err := left.ExpectedScore(right)
		if err != nil {
			return err
		}

		outcome := history.OutcomeNone
		switch verdict := a.oracle(m.LeftID, m.RightID, m.Attributes); {
		case verdict == nil:
			if a.drawPolicy == DrawIsTie {
				if err := left.Tied(right); err != nil {
					return err
				}
				outcome = history.OutcomeDraw
			}
		case *verdict:
			if err := left.Beat(right); err != nil {
				return err
			}
			outcome = history.OutcomeLeft
		default:
			if err := right.Beat(left); err != nil {
				return err
			}
			outcome = history.OutcomeRight
		}

		a.hist.Append(history.Bout{
			LeftID:                m.LeftID,
			RightID:               m.RightID,
			PredictedProbLeftWins: p,
			Outcome:               outcome,
			Attributes:            m.Attributes,
		})
	}
	return nil
}

// LeaderboardEntry is one ranked row of Leaderboard.
type LeaderboardEntry struct {
	ID     string
	Rating float64
}

// Leaderboard lists every known competitor sorted descending by rating,
// with ties broken by identifier for a stable order independent of
// insertion sequence.
func (a *LambdaArena) Leaderboard() []LeaderboardEntry {
	ids := make([]string, 0, len(a.competitors))
	for id := range a.competitors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]LeaderboardEntry, len(ids))
	for i, id := range ids {
		entries[i] = LeaderboardEntry{ID: id, Rating: a.competitors[id].Rating()}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rating > entries[j].Rating
	})
	return entries
}

// ExportState returns every known competitor's StateDoc keyed by
// identifier.
func (a *LambdaArena) ExportState() map[string]competitor.StateDoc {
	out := make(map[string]competitor.StateDoc, len(a.competitors))
	for id, c := range a.competitors {
		out[id] = c.ExportState()
	}
	return out
}

// LoadState reloads a single competitor's state document under id,
// materializing it first if unseen. It fails with whatever error the
// underlying competitor's LoadState returns, e.g. InvalidState on a
// variant mismatch.
func (a *LambdaArena) LoadState(id string, doc competitor.StateDoc) error {
	c, err := a.getOrCreate(id)
	if err != nil {
		return err
	}
	return c.LoadState(doc)
}
