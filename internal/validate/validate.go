// Package validate implements the validation harness (C11): the four
// preflight checks every prediction request must pass before any scoring
// begins (spec §4.7). Any failure here is the only place NotReady or
// UnknownTeam originate.
package validate

import (
	"math"

	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/injuries"
	"github.com/riversnfl/predictor/internal/playstore"
	"github.com/riversnfl/predictor/internal/riverserr"
)

// minPlaysPerTeam is the per-team play-row floor below which a prediction
// is refused (spec §4.7: "≥100 plays for each team to be predicted").
const minPlaysPerTeam = 100

// Check runs the four preflight checks of spec §4.7 for a (home, away)
// matchup against one snapshot's stores and the weights the weighter
// computed for this request.
func Check(plays *playstore.Store, g *grades.Store, inj *injuries.Store, home, away domain.TeamID, weights map[int]float64) error {
	if !g.HasTeam(home) {
		return riverserr.New(riverserr.UnknownTeam, "unknown team: "+string(home))
	}
	if !g.HasTeam(away) {
		return riverserr.New(riverserr.UnknownTeam, "unknown team: "+string(away))
	}

	if len(plays.Seasons()) < 1 {
		return riverserr.New(riverserr.NotReady, "play-row store has no seasons loaded")
	}
	for _, team := range []domain.TeamID{home, away} {
		if plays.PlayCount(team) < minPlaysPerTeam {
			return riverserr.New(riverserr.NotReady, "team "+string(team)+" has fewer than 100 plays on file")
		}
	}

	// injuries.Store.For never errors; it returns nil for an unlisted team.
	// Calling it here documents the check without ever being able to fail.
	_ = inj.For(home)
	_ = inj.For(away)

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return riverserr.New(riverserr.NotReady, "progressive weights do not sum to 1.0")
	}

	return nil
}
