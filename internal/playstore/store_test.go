package playstore

import (
	"testing"

	"github.com/riversnfl/predictor/internal/domain"
)

func epa(v float64) *float64 { return &v }
func down(v int) *int        { return &v }

func samplePlay(pos, def domain.TeamID, season int, kind domain.PlayKind, yards int) domain.PlayRow {
	return domain.PlayRow{
		GameID:      "g1",
		Season:      season,
		Week:        3,
		PosTeam:     pos,
		DefTeam:     def,
		PlayKind:    kind,
		YardLine100: 50,
		YardsGained: yards,
		EPA:         epa(0.1),
		Down:        down(1),
	}
}

func TestPlaysWhere_OffenseAndDefense(t *testing.T) {
	s := New()
	s.Load([]domain.PlayRow{
		samplePlay("BUF", "MIA", 2025, domain.Pass, 5),
		samplePlay("BUF", "MIA", 2025, domain.Run, 3),
		samplePlay("MIA", "BUF", 2025, domain.Pass, 7),
	})

	offIt := s.PlaysWhere(Filter{Team: "BUF", Side: Offense})
	count := 0
	offIt.Each(func(*domain.PlayRow) { count++ })
	if count != 2 {
		t.Errorf("BUF offense plays = %d, want 2", count)
	}

	defIt := s.PlaysWhere(Filter{Team: "BUF", Side: Defense})
	count = 0
	defIt.Each(func(*domain.PlayRow) { count++ })
	if count != 1 {
		t.Errorf("BUF defense plays = %d, want 1", count)
	}
}

func TestPlaysWhere_RestartableAcrossPasses(t *testing.T) {
	s := New()
	s.Load([]domain.PlayRow{
		samplePlay("BUF", "MIA", 2025, domain.Pass, 5),
		samplePlay("BUF", "MIA", 2025, domain.Run, 3),
	})

	it := s.PlaysWhere(Filter{Team: "BUF", Side: Offense})

	first := 0
	it.Each(func(*domain.PlayRow) { first++ })

	second := 0
	it.Each(func(*domain.PlayRow) { second++ })

	if first != second || first != 2 {
		t.Errorf("pass 1 = %d, pass 2 = %d, want both 2", first, second)
	}
}

func TestPlaysWhere_SeasonFilter(t *testing.T) {
	s := New()
	s.Load([]domain.PlayRow{
		samplePlay("BUF", "MIA", 2025, domain.Pass, 5),
		samplePlay("BUF", "MIA", 2024, domain.Pass, 5),
	})

	season := 2024
	it := s.PlaysWhere(Filter{Team: "BUF", Side: Offense, Season: &season})
	count := 0
	it.Each(func(*domain.PlayRow) { count++ })
	if count != 1 {
		t.Errorf("BUF 2024 offense plays = %d, want 1", count)
	}
}

func TestPlaysWhere_ExcludesSpecialTeamsViaScrimmagePredicate(t *testing.T) {
	s := New()
	s.Load([]domain.PlayRow{
		samplePlay("BUF", "MIA", 2025, domain.Pass, 5),
		samplePlay("BUF", "MIA", 2025, domain.Punt, 40),
	})

	it := s.PlaysWhere(Filter{Team: "BUF", Side: Offense, Predicate: Scrimmage})
	count := 0
	it.Each(func(*domain.PlayRow) { count++ })
	if count != 1 {
		t.Errorf("scrimmage plays = %d, want 1", count)
	}
}

func TestPlayCount(t *testing.T) {
	s := New()
	s.Load([]domain.PlayRow{
		samplePlay("BUF", "MIA", 2025, domain.Pass, 5),
		samplePlay("BUF", "MIA", 2024, domain.Run, 3),
	})

	if got := s.PlayCount("BUF"); got != 2 {
		t.Errorf("PlayCount(BUF) = %d, want 2", got)
	}
	if got := s.PlayCount("XXX"); got != 0 {
		t.Errorf("PlayCount(XXX) = %d, want 0", got)
	}
}

func TestAnd_TreatsNilAsAlwaysTrue(t *testing.T) {
	p := And(Scrimmage, nil)
	row := samplePlay("BUF", "MIA", 2025, domain.Pass, 5)
	if !p(&row) {
		t.Errorf("And(Scrimmage, nil) rejected a scrimmage play")
	}
}
