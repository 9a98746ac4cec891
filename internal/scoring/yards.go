package scoring

import (
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/playstore"
)

// Yards implements the yards scorer (spec §4.3.3): yards per scrimmage
// play, progressively blended, normalised against a 3..7 ypp band.
func Yards(store *playstore.Store, team domain.TeamID, weights map[int]float64) (Result, error) {
	blended, hasData := blend(store, team, playstore.Offense, weights, yardsPerPlay)
	if !hasData {
		return neutral(), nil
	}

	score := clamp(((blended-3.0)/4.0)*100, 0, 100)
	if err := checkFinite("yards_scorer", score); err != nil {
		return Result{}, err
	}

	isPass := func(row *domain.PlayRow) bool { return row.PlayKind == domain.Pass }
	isRun := func(row *domain.PlayRow) bool { return row.PlayKind == domain.Run }

	return Result{
		Score:            score,
		InsufficientData: false,
		Breakdowns: map[string]float64{
			"yards_per_play":      breakdown(store, team, playstore.Offense, nil, yardsPerPlay),
			"defensive_ypp":       breakdown(store, team, playstore.Defense, nil, yardsPerPlay),
			"yards_per_attempt":   breakdown(store, team, playstore.Offense, isPass, yardsPerPlay),
			"yards_per_carry":     breakdown(store, team, playstore.Offense, isRun, yardsPerPlay),
			"yards_after_catch":   breakdown(store, team, playstore.Offense, nil, meanYAC),
			"explosive_play_rate": breakdown(store, team, playstore.Offense, nil, explosiveRate),
		},
	}, nil
}

// meanYAC reduces an iterator to the mean yards-after-catch where present.
func meanYAC(it *playstore.Iterator) (float64, bool) {
	var sum float64
	var count int
	it.Each(func(row *domain.PlayRow) {
		if row.YardsAfterCatch != nil {
			sum += *row.YardsAfterCatch
			count++
		}
	})
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// explosiveRate reduces an iterator to 100 * (plays with yards_gained >= 20
// / total).
func explosiveRate(it *playstore.Iterator) (float64, bool) {
	var explosive, total int
	it.Each(func(row *domain.PlayRow) {
		total++
		if row.YardsGained >= 20 {
			explosive++
		}
	})
	if total == 0 {
		return 0, false
	}
	return 100 * float64(explosive) / float64(total), true
}
