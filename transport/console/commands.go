package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
	"github.com/rocketscienceinc/checkers-client/internal/input"
	"github.com/rocketscienceinc/checkers-client/internal/session"
)

var (
	ErrQuit           = errors.New("quit requested")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")

	errHelp = errors.New("help requested")
)

const Usage = `commands:
  create [name]    create a room
  join <code>      join a room by its six character code
  legacy [room]    join a named room directly
  click <x> <y>    pointer click at client pixels
  tap <x> <y>      touch at client pixels
  cell <row> <col> tap the centre of a square
  leave            leave the room
  esc              press Escape
  help             show this text
  quit             exit
`

// Parse turns one input line into a session message. Blank lines yield nil.
func Parse(line string, geometry input.Geometry) (session.Msg, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch name {
	case "create":
		return session.CreateRoom{Name: rest}, nil
	case "join":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: join <code>", ErrUsage)
		}
		return session.JoinRoom{Code: args[0]}, nil
	case "legacy":
		return session.JoinLegacy{Room: rest}, nil
	case "click", "tap":
		x, y, err := floats(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %s <x> <y>", err, name)
		}
		if name == "tap" {
			return session.Pointer{Event: input.TouchAt(input.Point{ClientX: x, ClientY: y})}, nil
		}
		return session.Pointer{Event: input.PointerAt(x, y)}, nil
	case "cell":
		row, col, err := ints(args)
		if err != nil {
			return nil, fmt.Errorf("%w: cell <row> <col>", err)
		}
		center := geometry.CellCenter(entity.Position{Row: row, Col: col})
		return session.Pointer{Event: input.TouchAt(center)}, nil
	case "leave":
		return session.Leave{}, nil
	case "esc", "escape":
		return session.Key{Name: session.KeyEscape}, nil
	case "help", "?":
		return nil, errHelp
	case "quit", "exit":
		return nil, ErrQuit
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func floats(args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, ErrUsage
	}

	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, ErrUsage
	}

	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, ErrUsage
	}

	return x, y, nil
}

func ints(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, ErrUsage
	}

	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, ErrUsage
	}

	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, ErrUsage
	}

	return a, b, nil
}
