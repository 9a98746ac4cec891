// Package predictor implements the matchup combiner (C10) and is the
// single public entry point of the engine (spec §6.1), wiring every other
// component together in the fixed order of spec §5:
// C11 → C2 → C5 → C6 → C7 → C8 → C9 → C10.
package predictor

import (
	"context"
	"math"

	"github.com/riversnfl/predictor/internal/aggregator"
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/injuryimpact"
	"github.com/riversnfl/predictor/internal/matchup"
	"github.com/riversnfl/predictor/internal/riverserr"
	"github.com/riversnfl/predictor/internal/scoring"
	"github.com/riversnfl/predictor/internal/snapshot"
	"github.com/riversnfl/predictor/internal/validate"
	"github.com/riversnfl/predictor/internal/weatherscore"
	"github.com/riversnfl/predictor/internal/weighter"
)

// homeFieldAdvantage is the fixed points bonus added to the home team's
// raw score (spec §4.9 step 2).
const homeFieldAdvantage = 2.5

// sigmoidSlope is k in the win-probability sigmoid (spec §4.9 step 5).
const sigmoidSlope = 0.12

// PredictionRequest names a matchup to score.
type PredictionRequest struct {
	Home    domain.TeamID
	Away    domain.TeamID
	Week    int
	Season  int
	Weather *domain.WeatherContext
}

// TeamComponents carries one team's intermediate values for the response
// (spec §6.1: "four component scores, matchup delta, weather score, raw
// score, injury deduction").
type TeamComponents struct {
	EPA             float64
	Success         float64
	Yards           float64
	Turnover        float64
	Delta           float64
	WeatherScore    float64
	Raw             float64
	InjuryDeduction float64
}

// Diagnostics carries the situational breakdowns per team plus which
// components degraded to a neutral score.
type Diagnostics struct {
	HomeBreakdowns   map[string]map[string]float64
	AwayBreakdowns   map[string]map[string]float64
	InsufficientData map[string]bool
}

// Prediction is the full result of one predict call (spec §6.1).
type Prediction struct {
	HomeScore      float64
	AwayScore      float64
	Winner         domain.TeamID
	Confidence     float64
	HomeComponents TeamComponents
	AwayComponents TeamComponents
	Diagnostics    Diagnostics
}

// Predict scores a matchup against snap. It is the engine's only public
// entry point; every caller-facing error is one of the four riverserr
// codes (spec §6.3).
func Predict(ctx context.Context, snap *snapshot.Snapshot, req PredictionRequest) (Prediction, error) {
	weights := weighter.Weights(req.Week, req.Season)

	if err := validate.Check(snap.Plays, snap.Grades, snap.Injuries, req.Home, req.Away, weights); err != nil {
		return Prediction{}, err
	}

	diag := Diagnostics{
		HomeBreakdowns:   make(map[string]map[string]float64),
		AwayBreakdowns:   make(map[string]map[string]float64),
		InsufficientData: make(map[string]bool),
	}

	homeComponents, err := scoreTeam(ctx, snap, req.Home, weights, "home", diag)
	if err != nil {
		return Prediction{}, err
	}
	awayComponents, err := scoreTeam(ctx, snap, req.Away, weights, "away", diag)
	if err != nil {
		return Prediction{}, err
	}

	homeGrades := snap.Grades.TeamGradesOrNeutral(req.Home)
	awayGrades := snap.Grades.TeamGradesOrNeutral(req.Away)
	homeComponents.Delta = matchup.Delta(homeGrades, awayGrades)
	awayComponents.Delta = matchup.Delta(awayGrades, homeGrades)

	homeComponents.InjuryDeduction = injuryimpact.Impact(ctx, req.Home, snap.Injuries.For(req.Home), snap.Grades)
	awayComponents.InjuryDeduction = injuryimpact.Impact(ctx, req.Away, snap.Injuries.For(req.Away), snap.Grades)

	homeComponents.WeatherScore = weatherscore.Score(req.Weather)
	awayComponents.WeatherScore = homeComponents.WeatherScore

	homeComponents.Raw = aggregator.Raw(aggregator.ComponentScores{
		EPA: homeComponents.EPA, Success: homeComponents.Success,
		Yards: homeComponents.Yards, Turnover: homeComponents.Turnover,
	}, homeComponents.Delta, homeComponents.WeatherScore)
	awayComponents.Raw = aggregator.Raw(aggregator.ComponentScores{
		EPA: awayComponents.EPA, Success: awayComponents.Success,
		Yards: awayComponents.Yards, Turnover: awayComponents.Turnover,
	}, awayComponents.Delta, awayComponents.WeatherScore)

	rawHome := homeComponents.Raw + homeFieldAdvantage
	rawAway := awayComponents.Raw

	scoreHome := rawHome * (1 - homeComponents.InjuryDeduction)
	scoreAway := rawAway * (1 - awayComponents.InjuryDeduction)

	diff := scoreHome - scoreAway
	pHome := 1 / (1 + math.Exp(-sigmoidSlope*diff))

	winner := req.Home
	confidence := pHome
	if pHome < 0.5 {
		winner = req.Away
		confidence = 1 - pHome
	}

	return Prediction{
		HomeScore:      clampScore(scoreHome),
		AwayScore:      clampScore(scoreAway),
		Winner:         winner,
		Confidence:     confidence,
		HomeComponents: homeComponents,
		AwayComponents: awayComponents,
		Diagnostics:    diag,
	}, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// scoreTeam runs the four C5 scorers for one team in order, checking for
// cancellation between each (spec §5, the only cancellation checkpoint in
// the scoring path), and records breakdowns/insufficient_data flags into
// diag under side ("home" or "away").
func scoreTeam(ctx context.Context, snap *snapshot.Snapshot, team domain.TeamID, weights map[int]float64, side string, diag Diagnostics) (TeamComponents, error) {
	var out TeamComponents

	epaResult, err := scoring.EPA(snap.Plays, team, weights, snap.Grades)
	if err != nil {
		return TeamComponents{}, err
	}
	out.EPA = epaResult.Score
	recordDiagnostics(diag, side, "epa", epaResult)
	if err := checkCancelled(ctx); err != nil {
		return TeamComponents{}, err
	}

	successResult, err := scoring.Success(snap.Plays, team, weights)
	if err != nil {
		return TeamComponents{}, err
	}
	out.Success = successResult.Score
	recordDiagnostics(diag, side, "success", successResult)
	if err := checkCancelled(ctx); err != nil {
		return TeamComponents{}, err
	}

	yardsResult, err := scoring.Yards(snap.Plays, team, weights)
	if err != nil {
		return TeamComponents{}, err
	}
	out.Yards = yardsResult.Score
	recordDiagnostics(diag, side, "yards", yardsResult)
	if err := checkCancelled(ctx); err != nil {
		return TeamComponents{}, err
	}

	turnoverResult, err := scoring.Turnover(snap.Plays, team, weights)
	if err != nil {
		return TeamComponents{}, err
	}
	out.Turnover = turnoverResult.Score
	recordDiagnostics(diag, side, "turnover", turnoverResult)

	return out, nil
}

func recordDiagnostics(diag Diagnostics, side, component string, result scoring.Result) {
	key := side + "_" + component
	byComponent := diag.HomeBreakdowns
	if side == "away" {
		byComponent = diag.AwayBreakdowns
	}
	byComponent[component] = result.Breakdowns
	diag.InsufficientData[key] = result.InsufficientData
}

func checkCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return riverserr.Wrap(riverserr.Cancelled, "prediction cancelled between component scorers", err)
	}
	return nil
}
