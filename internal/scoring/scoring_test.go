package scoring

import (
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/playstore"
	"github.com/riversnfl/predictor/internal/weighter"
)

// ep returns a pointer to v, for building domain.PlayRow fixtures.
func ep(v float64) *float64 { return &v }

// allSuccessfulOffense builds the 100-play "team A" fixture from the
// all-successful-offense boundary scenario: epa=+0.5, success=true,
// yards_gained=10, no turnovers.
func allSuccessfulOffense(team, opp domain.TeamID, season int) []domain.PlayRow {
	rows := make([]domain.PlayRow, 0, 100)
	for i := 0; i < 100; i++ {
		rows = append(rows, domain.PlayRow{
			GameID:      "g",
			Season:      season,
			Week:        6,
			PosTeam:     team,
			DefTeam:     opp,
			PlayKind:    domain.Pass,
			YardLine100: 50,
			YardsGained: 10,
			EPA:         ep(0.5),
			Success:     true,
		})
	}
	return rows
}

// strugglingOffense builds the "team B" fixture: epa=-0.5, success=false,
// yards_gained=2, interception on 3 of 100 plays.
func strugglingOffense(team, opp domain.TeamID, season int) []domain.PlayRow {
	rows := make([]domain.PlayRow, 0, 100)
	for i := 0; i < 100; i++ {
		rows = append(rows, domain.PlayRow{
			GameID:       "g",
			Season:       season,
			Week:         6,
			PosTeam:      team,
			DefTeam:      opp,
			PlayKind:     domain.Pass,
			YardLine100:  50,
			YardsGained:  2,
			EPA:          ep(-0.5),
			Success:      false,
			Interception: i < 3,
		})
	}
	return rows
}

// week6Weights is the pure-current-season weighting used throughout the
// boundary scenario 2 fixtures (week 6 saturates at weight 1.0).
func week6Weights() map[int]float64 { return weighter.Weights(6, 2025) }

func newStoreWith(rows ...[]domain.PlayRow) *playstore.Store {
	s := playstore.New()
	var all []domain.PlayRow
	for _, r := range rows {
		all = append(all, r...)
	}
	s.Load(all)
	return s
}
