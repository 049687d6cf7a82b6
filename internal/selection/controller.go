package selection

import (
	"github.com/rocketscienceinc/checkers-client/internal/apperror"
	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

// Result describes what a coordinate did to the selection.
type Result struct {
	// Intent is set when the coordinate completed a move.
	Intent  *entity.MoveIntent
	Changed bool
}

// Controller holds at most one selected own piece.
type Controller struct {
	selected entity.Selection
}

func New() *Controller {
	return &Controller{}
}

func (that *Controller) Selection() entity.Selection {
	return that.selected
}

// Clear drops the selection and reports whether there was one.
func (that *Controller) Clear() bool {
	had := that.selected.Selected
	that.selected = entity.NoSelection

	return had
}

// HandleCoordinate applies a click on pos for the local player.
// The destination of a move is never checked here; the server judges it.
func (that *Controller) HandleCoordinate(pos entity.Position, snap *entity.Snapshot, player entity.Color) (Result, error) {
	if snap == nil || !snap.IsTurnOf(player) {
		return Result{}, apperror.ErrNotYourTurn
	}

	if that.selected.Selected {
		intent := &entity.MoveIntent{From: that.selected.Position, To: pos}
		that.selected = entity.NoSelection

		return Result{Intent: intent, Changed: true}, nil
	}

	cell := snap.Board.At(pos)
	switch {
	case cell.IsEmpty():
		return Result{}, nil
	case cell.IsOwnedBy(player):
		that.selected = entity.SelectionAt(pos)
		return Result{Changed: true}, nil
	default:
		return Result{}, apperror.ErrForeignPiece
	}
}
