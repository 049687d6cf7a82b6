package snapshot

import "github.com/rocketscienceinc/checkers-client/internal/entity"

// Store keeps the last authoritative snapshot. Every apply replaces it whole.
type Store struct {
	current *entity.Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Apply replaces the held snapshot with a private copy of snap and reports whether it differed.
func (that *Store) Apply(snap entity.Snapshot) bool {
	changed := !that.current.Equal(&snap)
	that.current = snap.Clone()

	return changed
}

// Current returns the held snapshot or nil. Callers must not mutate it.
func (that *Store) Current() *entity.Snapshot {
	return that.current
}

func (that *Store) Reset() {
	that.current = nil
}
