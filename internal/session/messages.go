package session

import (
	"github.com/rocketscienceinc/checkers-client/internal/input"
	"github.com/rocketscienceinc/checkers-client/internal/protocol"
)

// Msg is anything the controller loop consumes.
type Msg interface {
	isSessionMsg()
}

type FromServer struct {
	Event protocol.Event
}

type CreateRoom struct {
	Name string
}

type JoinRoom struct {
	Code string
}

// JoinLegacy joins a fixed named room without a room code handshake.
type JoinLegacy struct {
	Room string
}

type Pointer struct {
	Event input.Event
}

type Key struct {
	Name string
}

type Leave struct{}

type Connected struct{}

type Disconnected struct {
	Err error
}

// Expired carries a notifier timer token back onto the loop.
type Expired struct {
	Token uint64
}

type GetView struct {
	Reply chan View
}

const KeyEscape = "Escape"

func (FromServer) isSessionMsg()   {}
func (CreateRoom) isSessionMsg()   {}
func (JoinRoom) isSessionMsg()     {}
func (JoinLegacy) isSessionMsg()   {}
func (Pointer) isSessionMsg()      {}
func (Key) isSessionMsg()          {}
func (Leave) isSessionMsg()        {}
func (Connected) isSessionMsg()    {}
func (Disconnected) isSessionMsg() {}
func (Expired) isSessionMsg()      {}
func (GetView) isSessionMsg()      {}
