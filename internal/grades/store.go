// Package grades implements the team-grade store (C3): per-team unit
// grades and per-team, per-position player grades ranked by quality so the
// injury-impact engine (C7) can find a starter's backup.
package grades

import (
	"sort"

	"github.com/riversnfl/predictor/internal/domain"
)

// Store holds team and player grades for one snapshot.
type Store struct {
	teams   map[domain.TeamID]domain.TeamGrades
	players map[domain.TeamID]map[domain.Position][]domain.PlayerGrade
}

// New returns an empty Store. Use Load to populate it.
func New() *Store {
	return &Store{
		teams:   make(map[domain.TeamID]domain.TeamGrades),
		players: make(map[domain.TeamID]map[domain.Position][]domain.PlayerGrade),
	}
}

// Load indexes team grades and player grades. Player grades are sorted
// descending by Grade within each (team, position) bucket, so index 0 is
// always the starter and index 1 the backup the injury-impact engine (C7)
// needs.
func (s *Store) Load(teamGrades map[domain.TeamID]domain.TeamGrades, playerGrades []domain.PlayerGrade) {
	for team, g := range teamGrades {
		s.teams[team] = g
	}

	for _, pg := range playerGrades {
		byPos := s.players[pg.Team]
		if byPos == nil {
			byPos = make(map[domain.Position][]domain.PlayerGrade)
			s.players[pg.Team] = byPos
		}
		byPos[pg.Position] = append(byPos[pg.Position], pg)
	}

	for _, byPos := range s.players {
		for pos, list := range byPos {
			sorted := make([]domain.PlayerGrade, len(list))
			copy(sorted, list)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i].Grade > sorted[j].Grade })
			byPos[pos] = sorted
		}
	}
}

// TeamGrades returns the grades for team, and whether the team was found.
func (s *Store) TeamGrades(team domain.TeamID) (domain.TeamGrades, bool) {
	g, ok := s.teams[team]
	return g, ok
}

// TeamGradesOrNeutral returns the grades for team, or the neutral 50.0
// grades if the team has none on file (spec §4.4, "missing grades default
// to 50.0").
func (s *Store) TeamGradesOrNeutral(team domain.TeamID) domain.TeamGrades {
	if g, ok := s.teams[team]; ok {
		return g
	}
	return domain.NeutralTeamGrades
}

// PlayerGrades returns the player grades for (team, position), sorted
// starter-first. A missing (team, position) returns nil.
func (s *Store) PlayerGrades(team domain.TeamID, pos domain.Position) []domain.PlayerGrade {
	byPos := s.players[team]
	if byPos == nil {
		return nil
	}
	return byPos[pos]
}

// HasTeam reports whether team has any grades on file, used by the C11
// validation harness to resolve a team identifier.
func (s *Store) HasTeam(team domain.TeamID) bool {
	_, ok := s.teams[team]
	return ok
}
