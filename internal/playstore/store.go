// Package playstore implements the play-row store (C1): play-by-play rows
// grouped by (team, season), with restartable filtered iteration over the
// rows of the selected team's buckets.
//
// Each play is stored twice, once under its possession team (offense) and
// once under its defensive team (defense); a Defense filter reads the
// defensive copy from the team's own defense bucket.
package playstore

import "github.com/riversnfl/predictor/internal/domain"

// bucket holds every play for one (team, season, side) as a slice of rows.
// Offense and defense buckets live in separate maps of Store, so
// PlaysWhere never has to branch on which team field to compare per row.
type bucket struct {
	rows []domain.PlayRow
}

type teamSeason struct {
	team   domain.TeamID
	season int
}

// Store is an immutable, read-only-after-Load play index.
type Store struct {
	offense map[teamSeason]*bucket
	defense map[teamSeason]*bucket
	seasons map[int]bool
}

// New returns an empty Store. Use Load to populate it.
func New() *Store {
	return &Store{
		offense: make(map[teamSeason]*bucket),
		defense: make(map[teamSeason]*bucket),
		seasons: make(map[int]bool),
	}
}

// Load indexes rows by (team, season) for both the possession and
// defensive side. Load is the only mutating operation on a Store; callers
// build one Store per snapshot and never mutate it afterward (spec §5).
func (s *Store) Load(rows []domain.PlayRow) {
	for _, row := range rows {
		s.seasons[row.Season] = true

		offKey := teamSeason{row.PosTeam, row.Season}
		b := s.offense[offKey]
		if b == nil {
			b = &bucket{}
			s.offense[offKey] = b
		}
		b.rows = append(b.rows, row)

		defKey := teamSeason{row.DefTeam, row.Season}
		d := s.defense[defKey]
		if d == nil {
			d = &bucket{}
			s.defense[defKey] = d
		}
		d.rows = append(d.rows, row)
	}
}

// Seasons returns every season with at least one loaded play, unordered.
func (s *Store) Seasons() []int {
	out := make([]int, 0, len(s.seasons))
	for season := range s.seasons {
		out = append(out, season)
	}
	return out
}

// PlayCount returns the number of plays where team was on offense, across
// every loaded season. Used by the C11 validation harness.
func (s *Store) PlayCount(team domain.TeamID) int {
	count := 0
	for key, b := range s.offense {
		if key.team == team {
			count += len(b.rows)
		}
	}
	return count
}

// Filter selects a subset of plays. Side selects whether team is read as
// the possession team or the defensive team; Predicate, if set, is an
// additional per-row filter (e.g. red zone, third down).
type Side int

const (
	Offense Side = iota
	Defense
)

type Filter struct {
	Team      domain.TeamID
	Season    *int
	Side      Side
	Predicate func(*domain.PlayRow) bool
}

// Iterator is a restartable, finite cursor over a filtered play set. It
// holds a reference to the backing buckets, not a copy of the rows, so
// repeated passes over the same filter cost no extra allocation beyond the
// Iterator value itself (spec §4.1, §5 "streams, no per-play
// intermediate arrays").
type Iterator struct {
	buckets   []*bucket
	predicate func(*domain.PlayRow) bool
	bucketIdx int
	rowIdx    int
}

// PlaysWhere returns a restartable iterator over the plays matching f.
func (s *Store) PlaysWhere(f Filter) *Iterator {
	index := s.offense
	if f.Side == Defense {
		index = s.defense
	}

	var buckets []*bucket
	if f.Season != nil {
		if b, ok := index[teamSeason{f.Team, *f.Season}]; ok {
			buckets = append(buckets, b)
		}
	} else {
		for key, b := range index {
			if key.team == f.Team {
				buckets = append(buckets, b)
			}
		}
	}

	return &Iterator{buckets: buckets, predicate: f.Predicate}
}

// Reset restarts the iterator from the beginning, for a second pass over
// the same filter (spec §4.1's "repeated passes" contract).
func (it *Iterator) Reset() {
	it.bucketIdx = 0
	it.rowIdx = 0
}

// Next advances the iterator and returns the next matching row, or
// (nil, false) when exhausted.
func (it *Iterator) Next() (*domain.PlayRow, bool) {
	for it.bucketIdx < len(it.buckets) {
		b := it.buckets[it.bucketIdx]
		for it.rowIdx < len(b.rows) {
			row := &b.rows[it.rowIdx]
			it.rowIdx++
			if it.predicate == nil || it.predicate(row) {
				return row, true
			}
		}
		it.bucketIdx++
		it.rowIdx = 0
	}
	return nil, false
}

// Each runs fn over every matching row, resetting the iterator first so
// callers can chain multiple Each passes over the same Iterator value.
func (it *Iterator) Each(fn func(*domain.PlayRow)) {
	it.Reset()
	for {
		row, ok := it.Next()
		if !ok {
			return
		}
		fn(row)
	}
}
