// Package injuryimpact implements the injury-impact engine (C7): converting
// a team's injury report into a single win-probability deduction, applied
// post-aggregation (spec §4.5). The engine consumes booleans the injury
// store's loader already computed ("predates season start", "predates by
// two months") rather than doing date arithmetic itself (spec §9).
package injuryimpact

import (
	"context"

	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/riverslog"
)

// maxImpact is the maximum win-probability deduction a single team's
// injury report can produce (spec §4.5: "prevents pathological injury lists
// from driving probability below 10% of the unadjusted value").
const maxImpact = 0.40

// Impact returns P_inj(T) ∈ [0, maxImpact] for a team's injury entries.
func Impact(ctx context.Context, team domain.TeamID, entries []domain.InjuryEntry, g *grades.Store) float64 {
	var total float64
	for _, entry := range entries {
		d, ok := perEntry(ctx, team, entry, g)
		if !ok {
			continue
		}
		total += d
	}
	if total > maxImpact {
		return maxImpact
	}
	return total
}

// perEntry computes Δ_i for a single injury entry, or (_, false) when the
// entry is ineligible or its status is unrecognised.
func perEntry(ctx context.Context, team domain.TeamID, entry domain.InjuryEntry, g *grades.Store) (float64, bool) {
	if entry.Status == domain.Questionable {
		return 0, false
	}
	if entry.PredatesByTwoMonths || entry.PredatesSeasonStart {
		return 0, false
	}

	mu, ok := statusMultiplier(entry.Status)
	if !ok {
		riverslog.Warn(ctx, "injuryimpact: unknown status %q for %s/%s, skipping entry", entry.Status, team, entry.Player)
		return 0, false
	}

	starterGrade := playerGrade(g, team, entry.Position, entry.Player, 70)
	beta := baseImpact(entry.Position, starterGrade)

	backupGrade, hasBackup := nextBestGrade(g, team, entry.Position, entry.Player)
	if !hasBackup {
		// No second graded entry on file for this slot (whether because the
		// grade store itself is nil, or because only the starter is
		// graded): treat it as a rookie first start with no grade.
		backupGrade = starterGrade - 15
	}
	alpha := backupAdjustment(entry.Position.Family(), backupGrade)
	if !hasBackup {
		alpha /= 2
	}

	return beta * alpha * mu, true
}

// statusMultiplier is the μ_status lookup of spec §4.5 step 2. Only
// non-QUESTIONABLE statuses reach here; QUESTIONABLE is filtered out in
// perEntry before this is consulted.
func statusMultiplier(status domain.InjuryStatus) (float64, bool) {
	switch status {
	case domain.Out, domain.IR:
		return 1.00, true
	case domain.Doubtful:
		return 0.80, true
	case domain.PUP, domain.NFI:
		return 0.90, true
	case domain.Questionable:
		return 0.00, true
	default:
		return 0, false
	}
}

// baseImpact is β, selected by position family and the player's own quality
// grade (spec §4.5 step 3). Unknown positions fall into Special (spec
// §4.5, "failure semantics").
func baseImpact(pos domain.Position, grade float64) float64 {
	switch pos.Family() {
	case domain.FamilyQB:
		switch {
		case grade >= 85:
			return 0.20
		case grade >= 75:
			return 0.15
		case grade >= 65:
			return 0.10
		default:
			return 0.08
		}
	case domain.FamilySkill:
		switch {
		case grade >= 85:
			return 0.05
		case grade >= 75:
			return 0.03
		case grade >= 65:
			return 0.02
		default:
			return 0.01
		}
	case domain.FamilyOL:
		var base float64
		switch {
		case grade >= 85:
			base = 0.020
		case grade >= 75:
			base = 0.015
		case grade >= 65:
			base = 0.010
		default:
			base = 0.005
		}
		switch pos {
		case domain.C:
			return base * 0.8
		case domain.OG:
			return base * 0.6
		default: // OT
			return base
		}
	case domain.FamilyDefense:
		switch {
		case grade >= 85:
			return 0.020
		case grade >= 75:
			return 0.010
		default:
			return 0.005
		}
	default: // Special
		return 0.005
	}
}

// backupAdjustment is α, selected by position family and the backup's
// grade (spec §4.5 step 4). A smaller α absorbs more of the starter's
// impact (a strong backup shrinks Δ_i).
func backupAdjustment(family domain.Family, backupGrade float64) float64 {
	switch family {
	case domain.FamilyQB:
		switch {
		case backupGrade >= 75:
			return 0.3
		case backupGrade >= 65:
			return 0.5
		default:
			return 0.7
		}
	case domain.FamilySkill:
		switch {
		case backupGrade >= 75:
			return 0.4
		case backupGrade >= 65:
			return 0.6
		default:
			return 0.8
		}
	case domain.FamilyOL, domain.FamilyDefense:
		switch {
		case backupGrade >= 75:
			return 0.3
		case backupGrade >= 65:
			return 0.5
		default:
			return 0.7
		}
	default: // Special
		return 0.8
	}
}

// playerGrade looks up a named player's grade at a position, falling back
// to def when the grade store has no record of them.
func playerGrade(g *grades.Store, team domain.TeamID, pos domain.Position, player string, def float64) float64 {
	if g == nil {
		return def
	}
	for _, p := range g.PlayerGrades(team, pos) {
		if p.Player == player {
			return p.Grade
		}
	}
	return def
}

// nextBestGrade returns the grade of the next-best graded player at pos
// after the named player (the depth-chart backup), or (_, false) if none
// is on file.
func nextBestGrade(g *grades.Store, team domain.TeamID, pos domain.Position, player string) (float64, bool) {
	if g == nil {
		return 0, false
	}
	players := g.PlayerGrades(team, pos)
	for i, p := range players {
		if p.Player == player {
			if i+1 < len(players) {
				return players[i+1].Grade, true
			}
			return 0, false
		}
	}
	return 0, false
}
