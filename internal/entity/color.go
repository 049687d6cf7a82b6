package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownColor = errors.New("unknown player color")

// Color identifies a side of the board.
type Color string

const (
	ColorRed  Color = "red"
	ColorBlue Color = "blue"

	NoColor Color = ""
)

func ParseColor(raw string) (Color, error) {
	color := Color(raw)
	if !color.Valid() {
		return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, raw)
	}

	return color, nil
}

func (that Color) Valid() bool {
	return that == ColorRed || that == ColorBlue
}

func (that Color) Opponent() Color {
	switch that {
	case ColorRed:
		return ColorBlue
	case ColorBlue:
		return ColorRed
	default:
		return NoColor
	}
}
