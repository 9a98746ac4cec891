package scoring

import (
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/playstore"
)

// Success implements the success-rate scorer (spec §4.3.2): the percentage
// of scrimmage plays with positive EPA, progressively blended, normalised
// by direct identity (already 0..100).
func Success(store *playstore.Store, team domain.TeamID, weights map[int]float64) (Result, error) {
	blended, hasData := blend(store, team, playstore.Offense, weights, successRate)
	if !hasData {
		return neutral(), nil
	}

	score := clamp(blended, 0, 100)
	if err := checkFinite("success_scorer", score); err != nil {
		return Result{}, err
	}

	return Result{
		Score:            score,
		InsufficientData: false,
		Breakdowns: map[string]float64{
			"offensive_success": breakdown(store, team, playstore.Offense, nil, successRate),
			"defensive_stop":    breakdown(store, team, playstore.Defense, nil, stopRate),
			"red_zone":          breakdown(store, team, playstore.Offense, (*domain.PlayRow).RedZone, successRate),
			"third_down":        breakdown(store, team, playstore.Offense, (*domain.PlayRow).ThirdDown, successRate),
			"goal_line":         breakdown(store, team, playstore.Offense, (*domain.PlayRow).GoalLine, successRate),
			"two_minute":        breakdown(store, team, playstore.Offense, (*domain.PlayRow).TwoMinute, successRate),
		},
	}, nil
}
