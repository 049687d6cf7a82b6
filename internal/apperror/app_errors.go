package apperror

import "errors"

var (
	ErrInvalidRoomCode = errors.New("room code must contain 6 characters")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrForeignPiece    = errors.New("that piece belongs to your opponent")
	ErrOutOfBounds     = errors.New("coordinate is outside the board")
	ErrGameFinished    = errors.New("game is already finished")
	ErrAlreadyInRoom   = errors.New("leave the current room first")
	ErrConnectionLost  = errors.New("connection to the server was lost")
	ErrOutboxFull      = errors.New("too many pending messages, try again")
)
