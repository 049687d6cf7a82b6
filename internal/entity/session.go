package entity

import (
	"errors"
	"fmt"
)

// Phase is the lifecycle stage of a room session.
type Phase string

const (
	PhaseModeSelect Phase = "mode_select"
	PhaseCreating   Phase = "creating"
	PhaseJoining    Phase = "joining"
	PhaseWaiting    Phase = "waiting"
	PhaseActive     Phase = "active"
	PhaseLeft       Phase = "left"
)

const MaxPlayers = 2

var ErrInvalidSession = errors.New("invalid room session")

type RoomSession struct {
	Phase       Phase  `json:"phase"`
	RoomCode    string `json:"room_code,omitempty"`
	PlayerColor Color  `json:"player_color,omitempty"`
	PlayerCount int    `json:"player_count"`
}

func NewRoomSession() RoomSession {
	return RoomSession{Phase: PhaseModeSelect}
}

func (that *RoomSession) IsModeSelect() bool {
	return that.Phase == PhaseModeSelect
}

func (that *RoomSession) IsPending() bool {
	return that.Phase == PhaseCreating || that.Phase == PhaseJoining
}

func (that *RoomSession) IsWaiting() bool {
	return that.Phase == PhaseWaiting
}

func (that *RoomSession) IsActive() bool {
	return that.Phase == PhaseActive
}

// InRoom reports whether the server has acknowledged a room for this session.
func (that *RoomSession) InRoom() bool {
	return that.IsWaiting() || that.IsActive()
}

func (that *RoomSession) Validate() error {
	if that.PlayerCount < 0 || that.PlayerCount > MaxPlayers {
		return fmt.Errorf("%w: player count %d", ErrInvalidSession, that.PlayerCount)
	}

	if that.IsActive() && that.PlayerCount != MaxPlayers {
		return fmt.Errorf("%w: active with %d players", ErrInvalidSession, that.PlayerCount)
	}

	if that.InRoom() != (that.RoomCode != "") {
		return fmt.Errorf("%w: room code %q in phase %s", ErrInvalidSession, that.RoomCode, that.Phase)
	}

	return nil
}
