package scoring

import (
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/playstore"
)

// EPA implements the EPA scorer (spec §4.3.1): mean EPA per scrimmage play,
// progressively blended across seasons, with an optional capped grade
// adjustment, normalised to 0..100.
func EPA(store *playstore.Store, team domain.TeamID, weights map[int]float64, g *grades.Store) (Result, error) {
	blended, hasData := blend(store, team, playstore.Offense, weights, meanEPA)
	if !hasData {
		return neutral(), nil
	}

	blended += gradeAdjustment(team, g)

	score := clamp(50+100*blended, 0, 100)
	if err := checkFinite("epa_scorer", score); err != nil {
		return Result{}, err
	}

	return Result{
		Score:            score,
		InsufficientData: false,
		Breakdowns: map[string]float64{
			"red_zone":   breakdown(store, team, playstore.Offense, (*domain.PlayRow).RedZone, meanEPA),
			"third_down": breakdown(store, team, playstore.Offense, (*domain.PlayRow).ThirdDown, meanEPA),
			"two_minute": breakdown(store, team, playstore.Offense, (*domain.PlayRow).TwoMinute, meanEPA),
			"goal_line":  breakdown(store, team, playstore.Offense, (*domain.PlayRow).GoalLine, meanEPA),
			"normal":     breakdown(store, team, playstore.Offense, isNormalSituation, meanEPA),
		},
	}, nil
}

// isNormalSituation is the complement of the red-zone/third-down/two-minute/
// goal-line breakdowns (spec §4.3.1: "normal (complement of the above)").
func isNormalSituation(row *domain.PlayRow) bool {
	return !row.RedZone() && !row.ThirdDown() && !row.TwoMinute()
}

// gradeAdjustment implements the optional grade_adjustment term of spec
// §4.3.1: a positionWeight-weighted average, over the team's graded
// offensive positions (QB, RB, WR, TE, OT, OG, C), of
// (gradeMultiplier(avgGrade)-1) * positionWeight * 0.1, capped to
// [-0.05, +0.05]. Defensive and special-teams player grades are not read.
func gradeAdjustment(team domain.TeamID, g *grades.Store) float64 {
	if g == nil {
		return 0
	}
	if _, ok := g.TeamGrades(team); !ok {
		return 0
	}

	var weightedSum, totalWeight float64
	for _, pos := range []domain.Position{domain.QB, domain.RB, domain.WR, domain.TE, domain.OT, domain.OG, domain.C} {
		players := g.PlayerGrades(team, pos)
		if len(players) == 0 {
			continue
		}

		var sum float64
		for _, p := range players {
			sum += p.Grade
		}
		avgGrade := sum / float64(len(players))

		w := positionWeight(pos)
		weightedSum += (gradeMultiplier(avgGrade) - 1) * w * 0.1
		totalWeight += w
	}

	if totalWeight == 0 {
		return 0
	}

	adjustment := weightedSum / totalWeight
	return clamp(adjustment, -0.05, 0.05)
}
