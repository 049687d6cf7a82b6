package protocol

import (
	"encoding/json"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

const (
	ActionCreateRoom     = "create_room"
	ActionJoinRoomByCode = "join_room_by_code"
	ActionJoinGame       = "join_game"
	ActionMakeMove       = "make_move"

	ActionRoomCreated  = "room_created"
	ActionPlayerJoined = "player_joined"
	ActionGameState    = "game_state"
	ActionError        = "error"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Intent is a client to server request.
type Intent interface {
	Action() string
}

type CreateRoom struct {
	RoomName string `json:"room_name"`
}

type JoinRoomByCode struct {
	RoomCode string `json:"room_code"`
}

// JoinGame joins a named room without matchmaking.
type JoinGame struct {
	Room string `json:"room"`
}

type MakeMove struct {
	From entity.Position `json:"from"`
	To   entity.Position `json:"to"`
}

func NewMakeMove(intent entity.MoveIntent) MakeMove {
	return MakeMove{From: intent.From, To: intent.To}
}

func (CreateRoom) Action() string     { return ActionCreateRoom }
func (JoinRoomByCode) Action() string { return ActionJoinRoomByCode }
func (JoinGame) Action() string       { return ActionJoinGame }
func (MakeMove) Action() string       { return ActionMakeMove }

// Event is a server to client notification.
type Event interface {
	Action() string
	event()
}

type RoomCreated struct {
	RoomCode    string       `json:"room_code"`
	PlayerColor entity.Color `json:"player_color"`
}

type PlayerJoined struct {
	PlayerCount int `json:"player_count"`
}

type GameState struct {
	Board         entity.Board        `json:"board"`
	CurrentPlayer entity.Color        `json:"current_player"`
	PlayerCount   *int                `json:"player_count,omitempty"`
	GameOver      bool                `json:"game_over,omitempty"`
	Winner        entity.Color        `json:"winner,omitempty"`
	MoveHistory   []entity.MoveRecord `json:"move_history,omitempty"`
}

// Snapshot converts the payload into a snapshot. A missing player count is taken from fallback.
func (that GameState) Snapshot(fallback int) entity.Snapshot {
	count := fallback
	if that.PlayerCount != nil {
		count = *that.PlayerCount
	}

	return entity.Snapshot{
		Board:         that.Board,
		CurrentPlayer: that.CurrentPlayer,
		PlayerCount:   count,
		GameOver:      that.GameOver,
		Winner:        that.Winner,
		MoveHistory:   that.MoveHistory,
	}
}

type Error struct {
	Message string `json:"message"`
}

func (RoomCreated) Action() string  { return ActionRoomCreated }
func (PlayerJoined) Action() string { return ActionPlayerJoined }
func (GameState) Action() string    { return ActionGameState }
func (Error) Action() string        { return ActionError }

func (RoomCreated) event()  {}
func (PlayerJoined) event() {}
func (GameState) event()    {}
func (Error) event()        {}
