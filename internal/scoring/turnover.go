package scoring

import (
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/playstore"
)

// Turnover implements the turnover scorer (spec §4.3.4): turnover rate per
// scrimmage play, progressively blended, inverse-normalised so a lower
// turnover rate yields a higher score.
func Turnover(store *playstore.Store, team domain.TeamID, weights map[int]float64) (Result, error) {
	blended, hasData := blend(store, team, playstore.Offense, weights, turnoverRate)
	if !hasData {
		return neutral(), nil
	}

	score := clamp(100-100*(blended-1.5)/2.5, 0, 100)
	if err := checkFinite("turnover_scorer", score); err != nil {
		return Result{}, err
	}

	isPass := func(row *domain.PlayRow) bool { return row.PlayKind == domain.Pass }
	isTouch := func(row *domain.PlayRow) bool { return row.PlayKind == domain.Pass || row.PlayKind == domain.Run }

	return Result{
		Score:            score,
		InsufficientData: false,
		Breakdowns: map[string]float64{
			"interception_rate":  breakdown(store, team, playstore.Offense, isPass, interceptionRate),
			"fumble_lost_rate":   breakdown(store, team, playstore.Offense, isTouch, fumbleLostRate),
			"defensive_takeaway": breakdown(store, team, playstore.Defense, nil, turnoverRate),
			"red_zone":           breakdown(store, team, playstore.Offense, (*domain.PlayRow).RedZone, turnoverRate),
			"third_down":         breakdown(store, team, playstore.Offense, (*domain.PlayRow).ThirdDown, turnoverRate),
			"two_minute":         breakdown(store, team, playstore.Offense, (*domain.PlayRow).TwoMinute, turnoverRate),
		},
	}, nil
}

// interceptionRate reduces an iterator (already filtered to pass plays) to
// 100 * (interceptions / total).
func interceptionRate(it *playstore.Iterator) (float64, bool) {
	var interceptions, total int
	it.Each(func(row *domain.PlayRow) {
		total++
		if row.Interception {
			interceptions++
		}
	})
	if total == 0 {
		return 0, false
	}
	return 100 * float64(interceptions) / float64(total), true
}

// fumbleLostRate reduces an iterator (already filtered to touches) to
// 100 * (fumbles lost / total).
func fumbleLostRate(it *playstore.Iterator) (float64, bool) {
	var fumbles, total int
	it.Each(func(row *domain.PlayRow) {
		total++
		if row.FumbleLost {
			fumbles++
		}
	})
	if total == 0 {
		return 0, false
	}
	return 100 * float64(fumbles) / float64(total), true
}
