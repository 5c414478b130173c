package competitor

import (
	"testing"

	"elote-go/eloteerr"
)

func TestDWZExpectedScoreComplementary(t *testing.T) {
	a, _ := NewDWZ(1600)
	b, _ := NewDWZ(1500)

	eAB, _ := a.ExpectedScore(b)
	eBA, _ := b.ExpectedScore(a)
	if !almostEqual(eAB+eBA, 1.0, 1e-9) {
		t.Fatalf("expected scores don't sum to 1: %v + %v", eAB, eBA)
	}
}

func TestDWZWinStrengthensWinner(t *testing.T) {
	a, _ := NewDWZ(1600)
	b, _ := NewDWZ(1500)

	if err := a.Beat(b); err != nil {
		t.Fatalf("a.Beat(b): %v", err)
	}
	if a.Rating() < 1600 {
		t.Fatalf("winner's rating dropped: %v", a.Rating())
	}
	if b.Rating() > 1500 {
		t.Fatalf("loser's rating rose: %v", b.Rating())
	}
	if a.MatchCount() != 1 || b.MatchCount() != 1 {
		t.Fatalf("expected match counts to increment, got a=%d b=%d", a.MatchCount(), b.MatchCount())
	}
}

func TestDWZTiedEqualsIsIdentity(t *testing.T) {
	a, _ := NewDWZ(1500)
	b, _ := NewDWZ(1500)

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

func TestDWZFloorHoldsUnderConsecutiveLosses(t *testing.T) {
	loser, _ := NewDWZ(105)
	winner, _ := NewDWZ(2200)

	for i := 0; i < 10000; i++ {
		if err := winner.Beat(loser); err != nil {
			t.Fatalf("winner.Beat(loser) iteration %d: %v", i, err)
		}
		if loser.Rating() < 100 {
			t.Fatalf("rating dropped below floor at iteration %d: %v", i, loser.Rating())
		}
	}
}

func TestDWZResetRestoresConstructionState(t *testing.T) {
	a, _ := NewDWZ(1500)
	b, _ := NewDWZ(1400)
	_ = a.Beat(b)

	a.Reset()
	if a.Rating() != 1500 {
		t.Fatalf("Reset() left rating at %v, want 1500", a.Rating())
	}
	if a.MatchCount() != 0 {
		t.Fatalf("Reset() left match count at %d, want 0", a.MatchCount())
	}
}

func TestDWZSerializationRoundTrip(t *testing.T) {
	a, _ := NewDWZ(1500)
	b, _ := NewDWZ(1400)
	_ = a.Beat(b)

	doc := a.ExportState()
	cfg := DefaultDWZConfig()
	target, err := NewDWZWithConfig(1, -1000, &cfg)
	if err != nil {
		t.Fatalf("NewDWZWithConfig: %v", err)
	}
	if err := target.LoadState(doc); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !almostEqual(target.Rating(), a.Rating(), 1e-9) {
		t.Fatalf("rating mismatch after round trip: %v vs %v", target.Rating(), a.Rating())
	}
	if target.MatchCount() != a.MatchCount() {
		t.Fatalf("match count mismatch after round trip: %d vs %d", target.MatchCount(), a.MatchCount())
	}
}

func TestDWZCrossTypeReject(t *testing.T) {
	elo, _ := NewElo(1500)
	doc := elo.ExportState()

	target, _ := NewDWZ(1500)
	err := target.LoadState(doc)
	if !eloteerr.Is(err, eloteerr.InvalidState) {
		t.Fatalf("expected InvalidState, got %v", err)
	}
}
