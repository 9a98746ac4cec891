package predictioncache

import (
	"context"
	"testing"

	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/injuries"
	"github.com/riversnfl/predictor/internal/playstore"
	"github.com/riversnfl/predictor/internal/predictor"
	"github.com/riversnfl/predictor/internal/snapshot"
)

func fixtureSnapshot() *snapshot.Snapshot {
	rows := make([]domain.PlayRow, 0, 300)
	for i := 0; i < 150; i++ {
		rows = append(rows, domain.PlayRow{
			Season: 2025, Week: 6, PosTeam: "A", DefTeam: "B",
			PlayKind: domain.Pass, YardLine100: 50, YardsGained: 5,
		})
		rows = append(rows, domain.PlayRow{
			Season: 2025, Week: 6, PosTeam: "B", DefTeam: "A",
			PlayKind: domain.Pass, YardLine100: 50, YardsGained: 5,
		})
	}
	plays := playstore.New()
	plays.Load(rows)

	g := grades.New()
	g.Load(map[domain.TeamID]domain.TeamGrades{
		"A": domain.NeutralTeamGrades,
		"B": domain.NeutralTeamGrades,
	}, nil)

	return snapshot.New(plays, g, injuries.New())
}

func TestPredict_FallsThroughWhenCacheDisabled(t *testing.T) {
	snap := fixtureSnapshot()
	req := predictor.PredictionRequest{Home: "A", Away: "B", Week: 6, Season: 2025}

	got, err := Predict(context.Background(), snap, req)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got.Winner != "A" {
		t.Errorf("Winner = %v, want A", got.Winner)
	}
}

func TestCacheKey_IsDeterministic(t *testing.T) {
	snap := fixtureSnapshot()
	req := predictor.PredictionRequest{Home: "A", Away: "B", Week: 6, Season: 2025}

	first := cacheKey(snap, req)
	second := cacheKey(snap, req)
	if first != second {
		t.Errorf("cacheKey not deterministic: %q != %q", first, second)
	}
}

func TestCacheKey_DiffersOnWeather(t *testing.T) {
	snap := fixtureSnapshot()
	base := predictor.PredictionRequest{Home: "A", Away: "B", Week: 6, Season: 2025}
	withWeather := base
	withWeather.Weather = &domain.WeatherContext{Venue: domain.Outdoor, WindMPH: 20}

	if cacheKey(snap, base) == cacheKey(snap, withWeather) {
		t.Errorf("cacheKey did not change when weather context changed")
	}
}

func TestWeatherFingerprint_NilIsNone(t *testing.T) {
	if got := weatherFingerprint(nil); got != "none" {
		t.Errorf("weatherFingerprint(nil) = %q, want \"none\"", got)
	}
}
