package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// BoardSize is the number of rows and columns of a checkers board.
const BoardSize = 8

const pieceType = "piece"

var (
	ErrInvalidBoard    = errors.New("board must be 8x8")
	ErrInvalidPosition = errors.New("position must be a [row, col] pair")
)

// Cell is a single square. The zero value is an empty square.
type Cell struct {
	Color Color
	King  bool
}

type wireCell struct {
	Type  string `json:"type"`
	Color Color  `json:"color"`
	King  bool   `json:"king"`
}

func NewPiece(color Color, king bool) Cell {
	return Cell{Color: color, King: king}
}

func (that Cell) IsEmpty() bool {
	return that.Color == NoColor
}

func (that Cell) IsOwnedBy(color Color) bool {
	return !that.IsEmpty() && that.Color == color
}

func (that Cell) MarshalJSON() ([]byte, error) {
	if that.IsEmpty() {
		return []byte("null"), nil
	}

	return json.Marshal(wireCell{Type: pieceType, Color: that.Color, King: that.King})
}

// UnmarshalJSON accepts null, 0 (the server's empty marker) or a piece object.
func (that *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("0")) {
		*that = Cell{}
		return nil
	}

	var cell wireCell
	if err := json.Unmarshal(data, &cell); err != nil {
		return fmt.Errorf("failed to unmarshal cell: %w", err)
	}

	if cell.Type != pieceType {
		*that = Cell{}
		return nil
	}

	if !cell.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColor, cell.Color)
	}

	*that = Cell{Color: cell.Color, King: cell.King}

	return nil
}

// Board is an 8x8 grid indexed as [row][col].
type Board [BoardSize][BoardSize]Cell

func (that *Board) At(pos Position) Cell {
	if !pos.OnBoard() {
		return Cell{}
	}

	return that[pos.Row][pos.Col]
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(rows) != BoardSize {
		return fmt.Errorf("%w: got %d rows", ErrInvalidBoard, len(rows))
	}

	var board Board
	for r, row := range rows {
		if len(row) != BoardSize {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r, len(row))
		}
		copy(board[r][:], row)
	}

	*that = board

	return nil
}

// Position is a board coordinate, serialized as [row, col].
type Position struct {
	Row int
	Col int
}

func (that Position) OnBoard() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{that.Row, that.Col})
}

func (that *Position) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("failed to unmarshal position: %w", err)
	}

	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d values", ErrInvalidPosition, len(pair))
	}

	that.Row, that.Col = pair[0], pair[1]

	return nil
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Selection is either empty or a single selected square.
type Selection struct {
	Position
	Selected bool
}

var NoSelection = Selection{}

func SelectionAt(pos Position) Selection {
	return Selection{Position: pos, Selected: true}
}

// MoveIntent is a request to move the piece at From to To. It is sent once and not retained.
type MoveIntent struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// MoveRecord is an entry of the server's recent move history.
type MoveRecord struct {
	From   Position `json:"from"`
	To     Position `json:"to"`
	Player Color    `json:"player"`
}

// Snapshot is the authoritative game state as last received from the server.
type Snapshot struct {
	Board         Board
	CurrentPlayer Color
	PlayerCount   int
	GameOver      bool
	Winner        Color
	MoveHistory   []MoveRecord
}

func (that *Snapshot) IsTurnOf(color Color) bool {
	return color.Valid() && that.CurrentPlayer == color
}

func (that *Snapshot) Equal(other *Snapshot) bool {
	if that == nil || other == nil {
		return that == other
	}

	return that.Board == other.Board &&
		that.CurrentPlayer == other.CurrentPlayer &&
		that.PlayerCount == other.PlayerCount &&
		that.GameOver == other.GameOver &&
		that.Winner == other.Winner &&
		slices.Equal(that.MoveHistory, other.MoveHistory)
}

// Clone returns a copy that shares no memory with the receiver.
func (that *Snapshot) Clone() *Snapshot {
	if that == nil {
		return nil
	}

	clone := *that
	clone.MoveHistory = slices.Clone(that.MoveHistory)

	return &clone
}
