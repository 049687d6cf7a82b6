package input

import (
	"math"

	"github.com/rocketscienceinc/checkers-client/internal/apperror"
	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

type Kind int

const (
	Pointer Kind = iota
	Touch
)

type Point struct {
	ClientX float64
	ClientY float64
}

// Event is a raw pointer or touch event in client pixel coordinates.
type Event struct {
	Kind    Kind
	Point   Point
	Touches []Point
}

func PointerAt(x, y float64) Event {
	return Event{Kind: Pointer, Point: Point{ClientX: x, ClientY: y}}
}

func TouchAt(points ...Point) Event {
	return Event{Kind: Touch, Touches: points}
}

// Geometry places the board in client pixel space.
type Geometry struct {
	OriginX float64
	OriginY float64
	Width   float64
}

func (that Geometry) SquareSize() float64 {
	return that.Width / entity.BoardSize
}

// CellCenter returns the client point at the centre of pos.
func (that Geometry) CellCenter(pos entity.Position) Point {
	size := that.SquareSize()

	return Point{
		ClientX: that.OriginX + (float64(pos.Col)+0.5)*size,
		ClientY: that.OriginY + (float64(pos.Row)+0.5)*size,
	}
}

// Normalize maps ev to a board square. Touch events use their first touch point.
func Normalize(ev Event, geometry Geometry) (entity.Position, error) {
	point := ev.Point
	if ev.Kind == Touch {
		if len(ev.Touches) == 0 {
			return entity.Position{}, apperror.ErrOutOfBounds
		}
		point = ev.Touches[0]
	}

	if !(geometry.Width > 0) || !finite(geometry.OriginX) || !finite(geometry.OriginY) || math.IsInf(geometry.Width, 0) {
		return entity.Position{}, apperror.ErrOutOfBounds
	}

	if !finite(point.ClientX) || !finite(point.ClientY) {
		return entity.Position{}, apperror.ErrOutOfBounds
	}

	size := geometry.SquareSize()
	col := math.Floor((point.ClientX - geometry.OriginX) / size)
	row := math.Floor((point.ClientY - geometry.OriginY) / size)

	if row < 0 || row >= entity.BoardSize || col < 0 || col >= entity.BoardSize {
		return entity.Position{}, apperror.ErrOutOfBounds
	}

	return entity.Position{Row: int(row), Col: int(col)}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
