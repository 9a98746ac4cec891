// Package matchup implements the matchup adjuster (C6): one linear
// combination of offensive and defensive team grades, consolidating the
// several redundant per-play multipliers of the source into a single
// post-normalisation adjustment (spec §9).
package matchup

import "github.com/riversnfl/predictor/internal/domain"

// Delta returns the signed grade-unit delta Δ (spec §4.4) for an offense
// facing a defense. Typical range is [-30, +30]; callers scale it by 0.08
// before folding it into the final team score (§4.9).
func Delta(off, def domain.TeamGrades) float64 {
	return 0.30*(off.OverallOffense-def.OverallDefense) +
		0.25*(off.Passing-def.Coverage) +
		0.20*(off.Rushing-def.RunDefense) +
		0.15*(off.Receiving-def.Coverage) +
		0.10*(off.PassBlocking-def.PassRush)
}
