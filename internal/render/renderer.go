package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

// Frame is everything a renderer needs to draw one screen.
type Frame struct {
	Session      entity.RoomSession
	Snapshot     *entity.Snapshot
	Selection    entity.Selection
	Notification string
}

// Renderer draws frames. Implementations must be stateless between calls.
type Renderer interface {
	Render(frame Frame)
}

type RendererFunc func(frame Frame)

func (that RendererFunc) Render(frame Frame) {
	that(frame)
}

// Text draws frames as plain text.
type Text struct {
	out io.Writer
}

func NewText(out io.Writer) *Text {
	return &Text{out: out}
}

func (that *Text) Render(frame Frame) {
	fmt.Fprint(that.out, Draw(frame))
}

// Draw returns the text rendering of frame.
func Draw(frame Frame) string {
	var b strings.Builder

	session := frame.Session
	switch {
	case session.IsModeSelect():
		b.WriteString("Create a room or join one by code.\n")
	case session.IsPending():
		b.WriteString("Waiting for the server...\n")
	case session.IsWaiting():
		fmt.Fprintf(&b, "Room %s: waiting for an opponent (%d/%d)\n", session.RoomCode, session.PlayerCount, entity.MaxPlayers)
	case session.IsActive():
		fmt.Fprintf(&b, "Room %s: you play %s (%d/%d)\n", session.RoomCode, colorName(session.PlayerColor), session.PlayerCount, entity.MaxPlayers)
	}

	if frame.Snapshot != nil && session.InRoom() {
		drawBoard(&b, frame.Snapshot, frame.Selection)
		drawStatus(&b, frame.Snapshot, session.PlayerColor)
	}

	if frame.Notification != "" {
		fmt.Fprintf(&b, "! %s\n", frame.Notification)
	}

	return b.String()
}

func drawBoard(b *strings.Builder, snap *entity.Snapshot, sel entity.Selection) {
	b.WriteString("   0 1 2 3 4 5 6 7\n")

	for row := range entity.BoardSize {
		fmt.Fprintf(b, "%d ", row)
		for col := range entity.BoardSize {
			pos := entity.Position{Row: row, Col: col}
			mark := " "
			if sel.Selected && sel.Position == pos {
				mark = "*"
			}
			b.WriteString(mark)
			b.WriteString(glyph(snap.Board.At(pos), row, col))
		}
		b.WriteString("\n")
	}
}

func drawStatus(b *strings.Builder, snap *entity.Snapshot, player entity.Color) {
	switch {
	case snap.GameOver && snap.Winner.Valid():
		fmt.Fprintf(b, "Game over: %s wins\n", colorName(snap.Winner))
	case snap.GameOver:
		b.WriteString("Game over\n")
	case player.Valid() && snap.CurrentPlayer == player:
		b.WriteString("Your turn\n")
	default:
		fmt.Fprintf(b, "Turn: %s\n", colorName(snap.CurrentPlayer))
	}

	for _, move := range snap.MoveHistory {
		fmt.Fprintf(b, "  %s %v -> %v\n", colorName(move.Player), move.From, move.To)
	}
}

func glyph(cell entity.Cell, row, col int) string {
	switch {
	case cell.IsEmpty() && (row+col)%2 == 1:
		return "."
	case cell.IsEmpty():
		return " "
	case cell.Color == entity.ColorRed && cell.King:
		return "R"
	case cell.Color == entity.ColorRed:
		return "r"
	case cell.King:
		return "B"
	default:
		return "b"
	}
}

func colorName(color entity.Color) string {
	if color.Valid() {
		return string(color)
	}

	return "spectator"
}
