package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-client/internal/apperror"
	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

func snapshotWith(turn entity.Color) *entity.Snapshot {
	snap := &entity.Snapshot{CurrentPlayer: turn, PlayerCount: 2}
	snap.Board[1][2] = entity.NewPiece(entity.ColorRed, false)
	snap.Board[5][4] = entity.NewPiece(entity.ColorBlue, false)

	return snap
}

func TestController_HandleCoordinate(t *testing.T) {
	own := entity.Position{Row: 1, Col: 2}
	foreign := entity.Position{Row: 5, Col: 4}
	empty := entity.Position{Row: 2, Col: 3}

	t.Run("Selects own piece on the player's turn", func(t *testing.T) {
		// Given: red to move and no selection
		ctrl := New()

		// When: red clicks its own piece
		res, err := ctrl.HandleCoordinate(own, snapshotWith(entity.ColorRed), entity.ColorRed)

		// Then: the piece is selected
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Nil(t, res.Intent)
		assert.Equal(t, entity.SelectionAt(own), ctrl.Selection())
	})

	t.Run("Rejects input out of turn without touching the selection", func(t *testing.T) {
		// Given: red has a selection but it is blue's turn
		ctrl := New()
		ctrl.selected = entity.SelectionAt(own)

		// When: red clicks anywhere
		res, err := ctrl.HandleCoordinate(empty, snapshotWith(entity.ColorBlue), entity.ColorRed)

		// Then: it is a turn violation and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Result{}, res)
		assert.Equal(t, entity.SelectionAt(own), ctrl.Selection())
	})

	t.Run("Missing snapshot or color counts as out of turn", func(t *testing.T) {
		ctrl := New()

		_, err := ctrl.HandleCoordinate(own, nil, entity.ColorRed)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		_, err = ctrl.HandleCoordinate(own, &entity.Snapshot{}, entity.NoColor)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Empty cell clicks never change the selection", func(t *testing.T) {
		// Given: no selection
		ctrl := New()
		snap := snapshotWith(entity.ColorRed)

		for range 3 {
			// When: clicking an empty square repeatedly
			res, err := ctrl.HandleCoordinate(empty, snap, entity.ColorRed)

			// Then: nothing happens
			require.NoError(t, err)
			assert.False(t, res.Changed)
			assert.Equal(t, entity.NoSelection, ctrl.Selection())
		}
	})

	t.Run("Foreign piece is reported and not selected", func(t *testing.T) {
		// Given: no selection
		ctrl := New()

		// When: red clicks a blue piece
		res, err := ctrl.HandleCoordinate(foreign, snapshotWith(entity.ColorRed), entity.ColorRed)

		// Then: the error surfaces and the selection stays empty
		require.ErrorIs(t, err, apperror.ErrForeignPiece)
		assert.False(t, res.Changed)
		assert.Equal(t, entity.NoSelection, ctrl.Selection())
	})

	t.Run("Second click emits exactly one move and clears the selection", func(t *testing.T) {
		destinations := []entity.Position{empty, foreign, own}

		for _, to := range destinations {
			// Given: own piece (1,2) selected
			ctrl := New()
			ctrl.selected = entity.SelectionAt(own)

			// When: clicking any destination
			res, err := ctrl.HandleCoordinate(to, snapshotWith(entity.ColorRed), entity.ColorRed)

			// Then: a move is produced regardless of what the destination holds
			require.NoError(t, err)
			require.NotNil(t, res.Intent)
			assert.Equal(t, entity.MoveIntent{From: own, To: to}, *res.Intent)
			assert.Equal(t, entity.NoSelection, ctrl.Selection())
		}
	})

	t.Run("Clear reports whether a selection existed", func(t *testing.T) {
		ctrl := New()
		ctrl.selected = entity.SelectionAt(own)

		assert.True(t, ctrl.Clear())
		assert.False(t, ctrl.Clear())
	})
}
