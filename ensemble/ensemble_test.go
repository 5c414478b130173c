package ensemble

import (
	"math"
	"testing"

	"elote-go/competitor"
)

func newElo(t *testing.T, rating float64) *competitor.Elo {
	t.Helper()
	c, err := competitor.NewElo(rating)
	if err != nil {
		t.Fatalf("competitor.NewElo(%v): %v", rating, err)
	}
	return c
}

func newGlicko(t *testing.T, rating, rd float64) *competitor.Glicko {
	t.Helper()
	c, err := competitor.NewGlicko(rating, rd)
	if err != nil {
		t.Fatalf("competitor.NewGlicko(%v,%v): %v", rating, rd, err)
	}
	return c
}

func TestEnsembleRejectsBadWeights(t *testing.T) {
	a := newElo(t, 1500)
	_, err := New([]Component{{Competitor: a, Weight: 0.6}})
	if err == nil {
		t.Fatalf("expected an error for weights that don't sum to 1")
	}
}

func TestEnsembleExpectedScoreIsWeightedBlend(t *testing.T) {
	aElo := newElo(t, 1600)
	aGlicko := newGlicko(t, 1600, 100)
	bElo := newElo(t, 1500)
	bGlicko := newGlicko(t, 1500, 100)

	a, err := New([]Component{{Competitor: aElo, Weight: 0.5}, {Competitor: aGlicko, Weight: 0.5}})
	if err != nil {
		t.Fatalf("New(a): %v", err)
	}
	b, err := New([]Component{{Competitor: bElo, Weight: 0.5}, {Competitor: bGlicko, Weight: 0.5}})
	if err != nil {
		t.Fatalf("New(b): %v", err)
	}

	got, err := a.ExpectedScore(b)
	if err != nil {
		t.Fatalf("a.ExpectedScore(b): %v", err)
	}

	eEloAB, _ := aElo.ExpectedScore(bElo)
	eGlickoAB, _ := aGlicko.ExpectedScore(bGlicko)
	want := 0.5*eEloAB + 0.5*eGlickoAB
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("ExpectedScore = %v, want %v", got, want)
	}
}

func TestEnsembleBeatDispatchesToEachComponent(t *testing.T) {
	aElo := newElo(t, 1500)
	bElo := newElo(t, 1500)

	a, _ := New([]Component{{Competitor: aElo, Weight: 1.0}})
	b, _ := New([]Component{{Competitor: bElo, Weight: 1.0}})

	if err := a.Beat(b); err != nil {
		t.Fatalf("a.Beat(b): %v", err)
	}
	if aElo.Rating() <= 1500 {
		t.Fatalf("expected the winning component's rating to rise, got %v", aElo.Rating())
	}
	if bElo.Rating() >= 1500 {
		t.Fatalf("expected the losing component's rating to fall, got %v", bElo.Rating())
	}
}

func TestEnsembleTypeMismatchOnComponentCountMismatch(t *testing.T) {
	a, _ := New([]Component{{Competitor: newElo(t, 1500), Weight: 1.0}})
	b, _ := New([]Component{
		{Competitor: newElo(t, 1500), Weight: 0.5},
		{Competitor: newGlicko(t, 1500, 100), Weight: 0.5},
	})

	if _, err := a.ExpectedScore(b); err == nil {
		t.Fatalf("expected a mismatch error for differently sized ensembles")
	}
}
