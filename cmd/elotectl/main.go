// Command elotectl is a thin demonstration binary: it runs a small
// tournament through a LambdaArena and, if ELOTE_POSTGRES_DSN is set,
// snapshots the result to Postgres. It exists to exercise the store
// package end-to-end; nothing in the core library imports it.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"elote-go/arena"
	"elote-go/config"
	"elote-go/internal/rlog"
	"elote-go/store"
)

func main() {
	arenaID := flag.String("arena-id", "demo", "identifier to snapshot this run's competitors under")
	competitors := flag.Int("competitors", 10, "number of synthetic competitors")
	bouts := flag.Int("bouts", 500, "number of bouts to dispatch")
	seed := flag.Int64("seed", 1, "RNG seed for the synthetic oracle")
	migrate := flag.Bool("migrate", false, "apply the store schema before saving the snapshot")
	flag.Parse()

	cfg := config.Load()

	scores := make(map[string]int, *competitors)
	for i := 1; i <= *competitors; i++ {
		scores[fmt.Sprintf("%d", i)] = i
	}
	oracle := func(leftID, rightID string, _ map[string]any) *bool {
		l, r := scores[leftID], scores[rightID]
		if l == r {
			return nil
		}
		won := l > r
		return &won
	}

	factory := arena.NewEloFactory(1200)
	factory.MinimumRating = cfg.MinimumRating
	a := arena.New(factory, oracle)

	rng := rand.New(rand.NewSource(*seed))
	matchups := make([]arena.Matchup, *bouts)
	for i := range matchups {
		l := rng.Intn(*competitors) + 1
		r := rng.Intn(*competitors) + 1
		matchups[i] = arena.Matchup{LeftID: fmt.Sprintf("%d", l), RightID: fmt.Sprintf("%d", r)}
	}
	if err := a.Tournament(matchups); err != nil {
		rlog.Errorf("tournament: %v", err)
		os.Exit(1)
	}

	fmt.Println("leaderboard:")
	for _, e := range a.Leaderboard() {
		fmt.Printf("  %-8s %.2f\n", e.ID, e.Rating)
	}
	report, err := a.History().ReportResults()
	if err != nil {
		rlog.Errorf("report_results: %v", err)
		os.Exit(1)
	}
	fmt.Printf("bouts: %d  accuracy@0.5: %.3f\n", report.Total, report.AccuracyAtDefaultThresholds)

	if cfg.PostgresDSN == "" {
		return
	}

	ctx := context.Background()
	s, err := store.NewPostgresStore(ctx, cfg.PostgresDSN)
	if err != nil {
		rlog.Errorf("connecting to postgres: %v", err)
		os.Exit(1)
	}
	defer s.Close()

	if *migrate {
		if err := s.Migrate(ctx); err != nil {
			rlog.Errorf("migrate: %v", err)
			os.Exit(1)
		}
	}
	docs := a.ExportState()
	if err := s.SaveArena(ctx, *arenaID, docs); err != nil {
		rlog.Errorf("save_arena: %v", err)
		os.Exit(1)
	}
	fmt.Printf("saved %d competitor snapshots under arena %q\n", len(docs), *arenaID)
}
