// Package injuries implements the injury-report store (C4): current
// injuries keyed by team.
package injuries

import "github.com/riversnfl/predictor/internal/domain"

// Store holds the current injury list for every team in a snapshot.
type Store struct {
	byTeam map[domain.TeamID][]domain.InjuryEntry
}

// New returns an empty Store. Use Load to populate it.
func New() *Store {
	return &Store{byTeam: make(map[domain.TeamID][]domain.InjuryEntry)}
}

// Load indexes injury entries by team.
func (s *Store) Load(entries []domain.InjuryEntry) {
	for _, e := range entries {
		s.byTeam[e.Team] = append(s.byTeam[e.Team], e)
	}
}

// For returns the injury list for team. An unlisted team returns nil, never
// an error, per spec §4.5 ("empty injury list => P_inj(T) = 0").
func (s *Store) For(team domain.TeamID) []domain.InjuryEntry {
	return s.byTeam[team]
}
