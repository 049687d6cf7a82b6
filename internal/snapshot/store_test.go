package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

func TestStore_Apply(t *testing.T) {
	t.Run("First snapshot is a change", func(t *testing.T) {
		// Given: an empty store
		store := NewStore()

		// When: applying a snapshot
		changed := store.Apply(entity.Snapshot{CurrentPlayer: entity.ColorRed, PlayerCount: 2})

		// Then: it is held
		assert.True(t, changed)
		require.NotNil(t, store.Current())
		assert.Equal(t, entity.ColorRed, store.Current().CurrentPlayer)
	})

	t.Run("Identical snapshot twice changes nothing", func(t *testing.T) {
		// Given: a store holding a snapshot
		store := NewStore()
		snap := entity.Snapshot{CurrentPlayer: entity.ColorBlue, PlayerCount: 2}
		snap.Board[0][1] = entity.NewPiece(entity.ColorBlue, true)
		store.Apply(snap)

		// When: applying it again
		changed := store.Apply(snap)

		// Then: no change is reported and the state is the same
		assert.False(t, changed)
		assert.True(t, store.Current().Equal(&snap))
	})

	t.Run("Apply replaces rather than merges", func(t *testing.T) {
		// Given: a board with a piece at (0,1)
		store := NewStore()
		first := entity.Snapshot{CurrentPlayer: entity.ColorRed}
		first.Board[0][1] = entity.NewPiece(entity.ColorRed, false)
		store.Apply(first)

		// When: applying a board where that square is empty
		second := entity.Snapshot{CurrentPlayer: entity.ColorBlue}
		second.Board[7][6] = entity.NewPiece(entity.ColorBlue, false)
		store.Apply(second)

		// Then: only the second board remains
		assert.True(t, store.Current().Board.At(entity.Position{Row: 0, Col: 1}).IsEmpty())
		assert.Equal(t, entity.ColorBlue, store.Current().Board.At(entity.Position{Row: 7, Col: 6}).Color)
	})

	t.Run("Held snapshot does not alias the caller's history", func(t *testing.T) {
		// Given: a snapshot with a move history
		store := NewStore()
		history := []entity.MoveRecord{{Player: entity.ColorRed}}
		store.Apply(entity.Snapshot{MoveHistory: history})

		// When: the caller mutates its slice
		history[0].Player = entity.ColorBlue

		// Then: the stored copy is unaffected
		assert.Equal(t, entity.ColorRed, store.Current().MoveHistory[0].Player)
	})

	t.Run("Reset forgets the snapshot", func(t *testing.T) {
		store := NewStore()
		store.Apply(entity.Snapshot{})

		store.Reset()

		assert.Nil(t, store.Current())
	})
}
