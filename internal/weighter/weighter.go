// Package weighter implements the progressive multi-season weighter (C2):
// mapping (week, season) to a set of blend weights across the current and
// up to two prior seasons.
package weighter

// weightRow is one row of the fixed schedule in spec §4.2, encoded as data
// rather than branching code (spec §9).
type weightRow struct {
	current, prior1, prior2 float64
}

// table is indexed by min(week, 6) - 1; week >= 6 all saturate at {1, 0, 0}.
var table = [6]weightRow{
	{0.88, 0.10, 0.02}, // week 1
	{0.90, 0.08, 0.02}, // week 2
	{0.94, 0.05, 0.01}, // week 3
	{0.96, 0.04, 0.00}, // week 4
	{0.98, 0.02, 0.00}, // week 5
	{1.00, 0.00, 0.00}, // week >= 6
}

// Weights returns a season -> weight mapping for the given current week and
// season. Weights always sum to 1.0 within floating-point error; entries
// with a zero weight are omitted.
func Weights(currentWeek, currentSeason int) map[int]float64 {
	idx := currentWeek - 1
	if idx < 0 {
		idx = 0
	}
	if idx > 5 {
		idx = 5
	}
	row := table[idx]

	weights := make(map[int]float64, 3)
	if row.current > 0 {
		weights[currentSeason] = row.current
	}
	if row.prior1 > 0 {
		weights[currentSeason-1] = row.prior1
	}
	if row.prior2 > 0 {
		weights[currentSeason-2] = row.prior2
	}
	return weights
}
