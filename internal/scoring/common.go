// Package scoring implements the four component scorers (C5): EPA,
// success-rate, yards, and turnover. Each follows the same three-step
// shape described in spec §4.3: a by-season raw statistic, a progressive
// blend across seasons, and normalisation to a 0..100 score, plus a set of
// situational breakdowns.
package scoring

import (
	"math"

	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/playstore"
	"github.com/riversnfl/predictor/internal/riverserr"
)

// Result is the output of one component scorer for one team.
type Result struct {
	Score            float64
	InsufficientData bool
	Breakdowns       map[string]float64
}

// neutral is returned when a team has no scrimmage plays at all (spec
// §4.3.5): "empty play set for a team => component returns the neutral
// score 50 and flags insufficient_data=true".
func neutral() Result {
	return Result{Score: 50, InsufficientData: true, Breakdowns: map[string]float64{}}
}

// safeDiv returns num/den, or 0 when den is zero (spec §4.3.5: "division
// by zero in any breakdown => breakdown returns 0").
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// checkFinite fails the scorer with DataCorruption the instant a top-level
// value is NaN or infinite (spec §4.3.5: "fatal ... fails with
// DataCorruption").
func checkFinite(component string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return riverserr.New(riverserr.DataCorruption, component+" produced a non-finite score")
	}
	return nil
}

// seasonStat reduces a team's scrimmage plays in one season to a single
// statistic via reduce, returning (value, hasData). hasData is false when
// there were zero matching plays, so blend() can renormalise weights over
// the seasons that actually contributed.
func seasonStat(store *playstore.Store, team domain.TeamID, season int, side playstore.Side, reduce func(*playstore.Iterator) (float64, bool)) (float64, bool) {
	it := store.PlaysWhere(playstore.Filter{
		Team:      team,
		Season:    &season,
		Side:      side,
		Predicate: playstore.Scrimmage,
	})
	return reduce(it)
}

// blend computes the progressive-weighted average of a per-season
// statistic, renormalising over seasons that have data (spec §4.3: "if no
// rows, the season contributes zero weight (renormalise remaining)").
func blend(store *playstore.Store, team domain.TeamID, side playstore.Side, weights map[int]float64, reduce func(*playstore.Iterator) (float64, bool)) (value float64, anyData bool) {
	var weightedSum, totalWeight float64
	for season, weight := range weights {
		stat, hasData := seasonStat(store, team, season, side, reduce)
		if !hasData {
			continue
		}
		weightedSum += weight * stat
		totalWeight += weight
		anyData = true
	}
	if !anyData || totalWeight == 0 {
		return 0, false
	}
	return weightedSum / totalWeight, true
}

// breakdown computes mean(epa)-shaped or rate-shaped situational
// breakdowns: callers pass a predicate and a reducer over all seasons
// combined (breakdowns are not blended across seasons, they're diagnostics
// computed directly, per spec §4.3's "each computed as ... on the filtered
// subset").
func breakdown(store *playstore.Store, team domain.TeamID, side playstore.Side, predicate func(*domain.PlayRow) bool, reduce func(*playstore.Iterator) (float64, bool)) float64 {
	it := store.PlaysWhere(playstore.Filter{
		Team:      team,
		Side:      side,
		Predicate: playstore.And(playstore.Scrimmage, predicate),
	})
	value, ok := reduce(it)
	if !ok {
		return 0
	}
	return value
}

// meanEPA reduces an iterator to the mean of present EPA values, skipping
// plays with no EPA recorded (spec §4.3.1: "missing epa values are
// skipped").
func meanEPA(it *playstore.Iterator) (float64, bool) {
	var sum float64
	var count int
	it.Each(func(row *domain.PlayRow) {
		if row.EPA != nil {
			sum += *row.EPA
			count++
		}
	})
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// successRate reduces an iterator to 100 * (plays with epa>0 / total).
func successRate(it *playstore.Iterator) (float64, bool) {
	var successes, total int
	it.Each(func(row *domain.PlayRow) {
		total++
		if row.EPA != nil && *row.EPA > 0 {
			successes++
		}
	})
	if total == 0 {
		return 0, false
	}
	return 100 * float64(successes) / float64(total), true
}

// stopRate reduces an iterator (already filtered to def-team plays) to
// 100 * (plays with epa<0 / total) — the success-rate scorer's defensive
// breakdown (spec §4.3.2).
func stopRate(it *playstore.Iterator) (float64, bool) {
	var stops, total int
	it.Each(func(row *domain.PlayRow) {
		total++
		if row.EPA != nil && *row.EPA < 0 {
			stops++
		}
	})
	if total == 0 {
		return 0, false
	}
	return 100 * float64(stops) / float64(total), true
}

// yardsPerPlay reduces an iterator to mean yards gained.
func yardsPerPlay(it *playstore.Iterator) (float64, bool) {
	var sum float64
	var count int
	it.Each(func(row *domain.PlayRow) {
		sum += float64(row.YardsGained)
		count++
	})
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// turnoverRate reduces an iterator to 100 * (turnovers / total).
func turnoverRate(it *playstore.Iterator) (float64, bool) {
	var turnovers, total int
	it.Each(func(row *domain.PlayRow) {
		total++
		if row.Interception || row.FumbleLost {
			turnovers++
		}
	})
	if total == 0 {
		return 0, false
	}
	return 100 * float64(turnovers) / float64(total), true
}

// positionWeight mirrors the relative ordering of spec §4.5's base-impact
// table (QB weighted highest, then skill, then line, then defense/special),
// normalised so the weights the EPA scorer's grade_adjustment iterates
// over are on a comparable scale, per the cross-reference in spec §4.3.1
// ("position_weight is drawn from the table in §4.5").
func positionWeight(pos domain.Position) float64 {
	switch pos.Family() {
	case domain.FamilyQB:
		return 1.0
	case domain.FamilySkill:
		return 0.6
	case domain.FamilyOL:
		return 0.3
	case domain.FamilyDefense:
		return 0.3
	default:
		return 0.15
	}
}

// gradeMultiplier implements the grade -> multiplier ladder shared by
// spec §4.3.1's grade_adjustment term.
func gradeMultiplier(grade float64) float64 {
	switch {
	case grade >= 85:
		return 1.20
	case grade >= 75:
		return 1.10
	case grade >= 65:
		return 1.00
	case grade >= 55:
		return 0.90
	default:
		return 0.80
	}
}
