package competitor

import (
	"testing"

	"elote-go/eloteerr"
)

func TestGlickoExpectedScoreComplementary(t *testing.T) {
	a, _ := NewGlicko(1500, 200)
	b, _ := NewGlicko(1400, 30)

	eAB, err := a.ExpectedScore(b)
	if err != nil {
		t.Fatalf("a.ExpectedScore(b): %v", err)
	}
	eBA, err := b.ExpectedScore(a)
	if err != nil {
		t.Fatalf("b.ExpectedScore(a): %v", err)
	}
	if !almostEqual(eAB+eBA, 1.0, 1e-9) {
		t.Fatalf("expected scores don't sum to 1: %v + %v", eAB, eBA)
	}
}

func TestGlickoBeatShrinksRD(t *testing.T) {
	a, _ := NewGlicko(1500, 200)
	b, _ := NewGlicko(1400, 30)

	if err := a.Beat(b); err != nil {
		t.Fatalf("a.Beat(b): %v", err)
	}
	if a.RD() >= 200 {
		t.Fatalf("expected a's RD to shrink after a bout, got %v", a.RD())
	}
	if a.Rating() <= 1500 {
		t.Fatalf("expected a's rating to rise after beating a higher-confidence opponent, got %v", a.Rating())
	}
}

func TestGlickoTiedEqualsIsIdentity(t *testing.T) {
	a, _ := NewGlicko(1500, 100)
	b, _ := NewGlicko(1500, 100)

	if err := a.Tied(b); err != nil {
		t.Fatalf("a.Tied(b): %v", err)
	}
	if !almostEqual(a.Rating(), 1500, 1e-9) {
		t.Fatalf("rating_a = %v, want unchanged 1500", a.Rating())
	}
	if !almostEqual(b.Rating(), 1500, 1e-9) {
		t.Fatalf("rating_b = %v, want unchanged 1500", b.Rating())
	}
}

func TestGlickoDecayGrowsRDTowardCeiling(t *testing.T) {
	g, _ := NewGlicko(1500, 50)
	g.Decay(10)
	if g.RD() <= 50 {
		t.Fatalf("expected Decay to grow RD, got %v", g.RD())
	}
	if g.RD() > GlickoRDMax {
		t.Fatalf("RD exceeded ceiling: %v", g.RD())
	}
	if g.Rating() != 1500 {
		t.Fatalf("Decay must not change rating, got %v", g.Rating())
	}
}

func TestGlickoFloorHoldsUnderConsecutiveLosses(t *testing.T) {
	loser, _ := NewGlicko(105, 50)
	winner, _ := NewGlicko(2800, 50)

	for i := 0; i < 10000; i++ {
		if err := winner.Beat(loser); err != nil {
			t.Fatalf("winner.Beat(loser) iteration %d: %v", i, err)
		}
		if loser.Rating() < 100 {
			t.Fatalf("rating dropped below floor at iteration %d: %v", i, loser.Rating())
		}
	}
}

func TestGlickoResetRestoresConstructionState(t *testing.T) {
	a, _ := NewGlicko(1500, 200)
	b, _ := NewGlicko(1400, 80)
	_ = a.Beat(b)

	a.Reset()
	if a.Rating() != 1500 || a.RD() != 200 {
		t.Fatalf("Reset() left (rating, rd) = (%v, %v), want (1500, 200)", a.Rating(), a.RD())
	}
}

func TestGlickoSerializationRoundTrip(t *testing.T) {
	a, _ := NewGlicko(1500, 200)
	b, _ := NewGlicko(1400, 30)
	_ = a.Beat(b)

	doc := a.ExportState()
	target, _ := NewGlicko(1500, 350)
	if err := target.LoadState(doc); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	roundTripped := target.ExportState()
	if *roundTripped.CurrentRating != *doc.CurrentRating {
		t.Fatalf("rating mismatch after round trip: %v vs %v", *roundTripped.CurrentRating, *doc.CurrentRating)
	}
}

func TestGlickoCrossTypeReject(t *testing.T) {
	elo, _ := NewElo(1500)
	doc := elo.ExportState()

	target, _ := NewGlicko(1500, 350)
	err := target.LoadState(doc)
	if !eloteerr.Is(err, eloteerr.InvalidState) {
		t.Fatalf("expected InvalidState, got %v", err)
	}
}
