package rlog

import "testing"

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	SetLevel("nonsense")
	if minLevel != levelRank["info"] {
		t.Fatalf("minLevel = %d, want the info rank %d", minLevel, levelRank["info"])
	}
}

func TestSetLevelAcceptsEveryPublishedLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		SetLevel(level)
		if minLevel != levelRank[level] {
			t.Fatalf("SetLevel(%q): minLevel = %d, want %d", level, minLevel, levelRank[level])
		}
	}
}
