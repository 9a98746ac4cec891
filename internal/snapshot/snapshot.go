// Package snapshot implements the data-snapshot surface (spec §6.2): the
// immutable (plays, team grades, player grades, injuries) tuple every
// prediction reads, swapped atomically between batches.
package snapshot

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/injuries"
	"github.com/riversnfl/predictor/internal/playstore"
)

// Snapshot is one immutable, fully-loaded view of the four stores a
// prediction reads. All fields are read-only after construction (spec §5).
type Snapshot struct {
	ID       uuid.UUID
	Plays    *playstore.Store
	Grades   *grades.Store
	Injuries *injuries.Store
}

// New stamps a fresh Snapshot from three already-loaded stores.
func New(plays *playstore.Store, g *grades.Store, inj *injuries.Store) *Snapshot {
	return &Snapshot{
		ID:       uuid.New(),
		Plays:    plays,
		Grades:   g,
		Injuries: inj,
	}
}

// Manager holds the currently-installed Snapshot behind an atomic pointer,
// so concurrent predictions never observe a torn or half-swapped read
// model (spec §5: "no locks are required on the read path").
type Manager struct {
	current     atomic.Pointer[Snapshot]
	installedAt atomic.Pointer[time.Time]
}

// NewManager returns an empty Manager. Current returns nil until Install
// has been called at least once.
func NewManager() *Manager {
	return &Manager{}
}

// Install atomically swaps in next as the current snapshot.
func (m *Manager) Install(next *Snapshot) {
	m.current.Store(next)
	now := time.Now()
	m.installedAt.Store(&now)
}

// Current returns the installed snapshot, or nil if none has been
// installed yet.
func (m *Manager) Current() *Snapshot {
	return m.current.Load()
}

// InstalledAt returns the wall-clock time of the last successful Install,
// or the zero time if none has happened yet. Exposed for an external
// health-check collaborator to judge snapshot freshness; the manager
// itself never schedules anything.
func (m *Manager) InstalledAt() time.Time {
	t := m.installedAt.Load()
	if t == nil {
		return time.Time{}
	}
	return *t
}
