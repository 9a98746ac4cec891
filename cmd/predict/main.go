// Command predict loads a snapshot and prints one matchup prediction.
// Ingestion and persistence are out of scope for the engine itself (spec
// §6.4); this binary is the thin external collaborator that wires a
// snapshot source and a request together, in the same style as the
// teacher's cmd/import_historical.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/riversnfl/predictor/internal/cache"
	"github.com/riversnfl/predictor/internal/config"
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/predictioncache"
	"github.com/riversnfl/predictor/internal/predictor"
	"github.com/riversnfl/predictor/internal/riverslog"
	"github.com/riversnfl/predictor/internal/snapshot"
)

var (
	home   = flag.String("home", "", "Home team abbreviation")
	away   = flag.String("away", "", "Away team abbreviation")
	week   = flag.Int("week", 1, "Week number (1-22)")
	season = flag.Int("season", 2025, "Season year")
)

func main() {
	flag.Parse()
	if *home == "" || *away == "" {
		log.Fatal("both -home and -away are required")
	}

	cfg := config.LoadConfig()
	ctx := riverslog.WithTraceID(context.Background(), "cmd-predict")

	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to load snapshot: %v", err)
	}
	riverslog.SnapshotInstalled(ctx, snap.ID.String(),
		snap.Plays.PlayCount(domain.TeamID(*home))+snap.Plays.PlayCount(domain.TeamID(*away)),
		gradedTeamCount(snap, *home, *away), injuredTeamCount(snap, *home, *away))

	if cfg.RedisURL != "" {
		if err := cache.Connect(ctx, cache.Config{RedisURL: cfg.RedisURL}); err != nil {
			log.Printf("prediction cache disabled: %v", err)
		} else {
			defer cache.Close()
		}
	}

	req := predictor.PredictionRequest{
		Home:   domain.TeamID(*home),
		Away:   domain.TeamID(*away),
		Week:   *week,
		Season: *season,
	}

	result, err := predictioncache.Predict(ctx, snap, req)
	if err != nil {
		log.Fatalf("prediction failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("failed to format prediction: %v", err)
	}
	fmt.Println(string(out))
}

// gradedTeamCount reports how many of home/away resolve in the grade store,
// for the install log line.
func gradedTeamCount(snap *snapshot.Snapshot, home, away string) int {
	count := 0
	if snap.Grades.HasTeam(domain.TeamID(home)) {
		count++
	}
	if snap.Grades.HasTeam(domain.TeamID(away)) {
		count++
	}
	return count
}

// injuredTeamCount reports how many of home/away have any injury entries on
// file, for the install log line.
func injuredTeamCount(snap *snapshot.Snapshot, home, away string) int {
	count := 0
	if len(snap.Injuries.For(domain.TeamID(home))) > 0 {
		count++
	}
	if len(snap.Injuries.For(domain.TeamID(away))) > 0 {
		count++
	}
	return count
}

// loadSnapshot prefers a CSV directory when configured, falling back to
// Postgres when a database URL is set instead.
func loadSnapshot(ctx context.Context, cfg *config.Config) (*snapshot.Snapshot, error) {
	if cfg.SnapshotCSVDir != "" {
		return snapshot.LoadFromCSV(cfg.SnapshotCSVDir)
	}

	pool, err := snapshot.ConnectPostgres(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return snapshot.LoadFromPostgres(ctx, pool, []int{*season, *season - 1, *season - 2})
}
