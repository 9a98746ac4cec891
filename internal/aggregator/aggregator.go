// Package aggregator implements the team aggregator (C9): the single
// weighted sum that combines the four component scores with the matchup
// delta and weather score into one raw team score (spec §4.8).
package aggregator

// ComponentScores holds the four C5 scores for one team, each already
// normalised to 0..100.
type ComponentScores struct {
	EPA      float64
	Success  float64
	Yards    float64
	Turnover float64
}

// Raw computes raw(T) from the team's component scores, its matchup delta
// Δ, and the shared weather score. The coefficients sum to 1.03 by design
// (spec §4.8); this is intentional and not renormalised.
func Raw(scores ComponentScores, delta, weatherScore float64) float64 {
	return 0.26*scores.EPA + 0.26*scores.Success + 0.21*scores.Yards + 0.21*scores.Turnover +
		0.08*(50+delta) +
		0.01*weatherScore
}
