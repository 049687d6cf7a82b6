package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

func activeFrame() Frame {
	snap := &entity.Snapshot{CurrentPlayer: entity.ColorRed, PlayerCount: 2}
	snap.Board[1][2] = entity.NewPiece(entity.ColorRed, false)
	snap.Board[6][1] = entity.NewPiece(entity.ColorBlue, true)

	return Frame{
		Session:  entity.RoomSession{Phase: entity.PhaseActive, RoomCode: "ABC123", PlayerColor: entity.ColorRed, PlayerCount: 2},
		Snapshot: snap,
	}
}

func TestDraw(t *testing.T) {
	t.Run("Mode select shows the prompt and no board", func(t *testing.T) {
		out := Draw(Frame{Session: entity.NewRoomSession()})

		assert.Contains(t, out, "Create a room")
		assert.NotContains(t, out, "0 1 2")
	})

	t.Run("Active frame shows room, color, pieces and turn", func(t *testing.T) {
		// Given: an active frame
		frame := activeFrame()

		// When: drawing it
		out := Draw(frame)

		// Then: the header, pieces and turn line are present
		lines := strings.Split(out, "\n")
		assert.Contains(t, lines[0], "Room ABC123: you play red")
		assert.Equal(t, "1  .   r   .   .  ", lines[3])
		assert.Contains(t, lines[8], "B")
		assert.Contains(t, out, "Your turn")
	})

	t.Run("Selection is marked", func(t *testing.T) {
		frame := activeFrame()
		frame.Selection = entity.SelectionAt(entity.Position{Row: 1, Col: 2})

		out := Draw(frame)

		assert.Contains(t, out, "*r")
	})

	t.Run("Winner and notification are shown", func(t *testing.T) {
		frame := activeFrame()
		frame.Snapshot.GameOver = true
		frame.Snapshot.Winner = entity.ColorBlue
		frame.Notification = "Room is full"

		out := Draw(frame)

		assert.Contains(t, out, "Game over: blue wins")
		assert.Contains(t, out, "! Room is full")
	})

	t.Run("Same frame renders identically", func(t *testing.T) {
		var first, second bytes.Buffer

		NewText(&first).Render(activeFrame())
		NewText(&second).Render(activeFrame())

		assert.Equal(t, first.String(), second.String())
	})
}
