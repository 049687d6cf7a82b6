package suite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
	"github.com/rocketscienceinc/checkers-client/internal/protocol"
)

const (
	maxWaitDuration = 30 * time.Second
	historySize     = 5
)

var (
	errGameOver    = errors.New("game is over")
	errNotYourTurn = errors.New("not your turn")
	errInvalidMove = errors.New("invalid move")
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Server *GameServer
}

// New - starts an in-process game server that speaks the room code protocol.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	server := newGameServer(logger)
	t.Cleanup(server.Close)

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Server: server,
	}
}

type player struct {
	mu    sync.Mutex
	conn  *websocket.Conn
	color entity.Color
	room  *room
}

func (that *player) send(action string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	frame, err := json.Marshal(protocol.Message{Action: action, Payload: data})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.conn.WriteMessage(websocket.TextMessage, frame)
}

type room struct {
	code    string
	players []*player
	state   protocol.GameState
}

func (that *room) count() *int {
	n := len(that.players)
	return &n
}

func (that *room) broadcast(action string, payload any) {
	for _, p := range that.players {
		_ = p.send(action, payload)
	}
}

// GameServer is a minimal authoritative server. It moves pieces without checking rules.
type GameServer struct {
	*httptest.Server
	logger *slog.Logger

	mu    sync.Mutex
	rooms map[string]*room
	next  int
}

func newGameServer(logger *slog.Logger) *GameServer {
	gs := &GameServer{
		logger: logger.With("component", "suite_server"),
		rooms:  make(map[string]*room),
	}

	upgrader := websocket.Upgrader{}
	gs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		gs.serve(&player{conn: conn})
	}))

	return gs
}

// URL - returns the websocket address of the server.
func (that *GameServer) URL() string {
	return "ws" + strings.TrimPrefix(that.Server.URL, "http") + "/ws"
}

// RoomCount - returns the number of rooms with at least one player.
func (that *GameServer) RoomCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.rooms)
}

func (that *GameServer) serve(p *player) {
	defer that.leave(p)

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg protocol.Message
		if err = json.Unmarshal(data, &msg); err != nil {
			_ = p.send(protocol.ActionError, protocol.Error{Message: "Malformed message"})
			continue
		}

		that.handle(p, msg)
	}
}

func (that *GameServer) handle(p *player, msg protocol.Message) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch msg.Action {
	case protocol.ActionCreateRoom:
		that.next++
		code := fmt.Sprintf("ROOM%02d", that.next%100)
		r := &room{code: code, state: initialState()}
		that.rooms[code] = r
		that.seat(p, r, entity.ColorRed)
		_ = p.send(protocol.ActionRoomCreated, protocol.RoomCreated{RoomCode: code, PlayerColor: entity.ColorRed})
		_ = p.send(protocol.ActionPlayerJoined, protocol.PlayerJoined{PlayerCount: 1})

	case protocol.ActionJoinRoomByCode:
		var req protocol.JoinRoomByCode
		_ = json.Unmarshal(msg.Payload, &req)

		r, ok := that.rooms[req.RoomCode]
		switch {
		case !ok:
			_ = p.send(protocol.ActionError, protocol.Error{Message: "Room not found"})
			return
		case len(r.players) >= entity.MaxPlayers:
			_ = p.send(protocol.ActionError, protocol.Error{Message: "Room is full"})
			return
		}

		that.seat(p, r, entity.ColorBlue)
		_ = p.send(protocol.ActionRoomCreated, protocol.RoomCreated{RoomCode: r.code, PlayerColor: entity.ColorBlue})
		r.state.PlayerCount = r.count()
		r.broadcast(protocol.ActionPlayerJoined, protocol.PlayerJoined{PlayerCount: len(r.players)})
		r.broadcast(protocol.ActionGameState, r.state)

	case protocol.ActionMakeMove:
		var req protocol.MakeMove
		if err := json.Unmarshal(msg.Payload, &req); err != nil || p.room == nil {
			_ = p.send(protocol.ActionError, protocol.Error{Message: "Invalid move"})
			return
		}

		if err := move(p.room, p.color, req); err != nil {
			_ = p.send(protocol.ActionError, protocol.Error{Message: err.Error()})
			return
		}
		p.room.broadcast(protocol.ActionGameState, p.room.state)

	default:
		_ = p.send(protocol.ActionError, protocol.Error{Message: "Unknown action"})
	}
}

func (that *GameServer) seat(p *player, r *room, color entity.Color) {
	p.color = color
	p.room = r
	r.players = append(r.players, p)
}

func (that *GameServer) leave(p *player) {
	that.mu.Lock()
	defer that.mu.Unlock()

	r := p.room
	if r == nil {
		return
	}

	kept := r.players[:0]
	for _, other := range r.players {
		if other != p {
			kept = append(kept, other)
		}
	}
	r.players = kept

	if len(r.players) == 0 {
		delete(that.rooms, r.code)
		return
	}

	r.state.PlayerCount = r.count()
	r.broadcast(protocol.ActionPlayerJoined, protocol.PlayerJoined{PlayerCount: len(r.players)})
}

func move(r *room, color entity.Color, req protocol.MakeMove) error {
	state := &r.state

	switch {
	case state.GameOver:
		return errGameOver
	case state.CurrentPlayer != color:
		return errNotYourTurn
	case !req.From.OnBoard() || !req.To.OnBoard():
		return errInvalidMove
	}

	piece := state.Board[req.From.Row][req.From.Col]
	if !piece.IsOwnedBy(color) || !state.Board[req.To.Row][req.To.Col].IsEmpty() {
		return errInvalidMove
	}

	state.Board[req.From.Row][req.From.Col] = entity.Cell{}
	state.Board[req.To.Row][req.To.Col] = piece
	state.CurrentPlayer = color.Opponent()

	state.MoveHistory = append(state.MoveHistory, entity.MoveRecord{From: req.From, To: req.To, Player: color})
	if len(state.MoveHistory) > historySize {
		state.MoveHistory = state.MoveHistory[len(state.MoveHistory)-historySize:]
	}

	return nil
}

func initialState() protocol.GameState {
	state := protocol.GameState{CurrentPlayer: entity.ColorRed}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if (row+col)%2 == 0 {
				continue
			}

			switch {
			case row < 3:
				state.Board[row][col] = entity.NewPiece(entity.ColorBlue, false)
			case row > 4:
				state.Board[row][col] = entity.NewPiece(entity.ColorRed, false)
			}
		}
	}

	return state
}
