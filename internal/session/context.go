package session

import (
	"github.com/google/uuid"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
	"github.com/rocketscienceinc/checkers-client/internal/selection"
	"github.com/rocketscienceinc/checkers-client/internal/snapshot"
)

// SessionContext owns all mutable state of one client session.
type SessionContext struct {
	// ID identifies this client for the lifetime of the process and survives resets.
	ID string

	Room        entity.RoomSession
	PendingRoom string
	Legacy      bool

	Snapshots *snapshot.Store
	Selection *selection.Controller
}

// NewSessionContext - creates a session in mode select. An empty id gets a random one.
func NewSessionContext(id string) *SessionContext {
	if id == "" {
		id = uuid.NewString()
	}

	return &SessionContext{
		ID:        id,
		Room:      entity.NewRoomSession(),
		Snapshots: snapshot.NewStore(),
		Selection: selection.New(),
	}
}

// Reset returns to mode select and drops everything but the ID.
func (that *SessionContext) Reset() {
	that.Room = entity.NewRoomSession()
	that.PendingRoom = ""
	that.Legacy = false
	that.Snapshots.Reset()
	that.Selection.Clear()
}

// View is a copy of the visible session state.
type View struct {
	SessionID     string           `json:"session_id"`
	Phase         entity.Phase     `json:"phase"`
	RoomCode      string           `json:"room_code,omitempty"`
	PlayerColor   entity.Color     `json:"player_color,omitempty"`
	PlayerCount   int              `json:"player_count"`
	CurrentPlayer entity.Color     `json:"current_player,omitempty"`
	GameOver      bool             `json:"game_over"`
	Winner        entity.Color     `json:"winner,omitempty"`
	Selection     *entity.Position `json:"selection,omitempty"`
	Notification  string           `json:"notification,omitempty"`
	Connected     bool             `json:"connected"`
}
