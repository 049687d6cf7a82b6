package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/checkers-client/internal/apperror"
	"github.com/rocketscienceinc/checkers-client/internal/entity"
	"github.com/rocketscienceinc/checkers-client/internal/input"
	"github.com/rocketscienceinc/checkers-client/internal/notify"
	"github.com/rocketscienceinc/checkers-client/internal/protocol"
	"github.com/rocketscienceinc/checkers-client/internal/render"
)

const (
	DefaultRoomName   = "My room"
	DefaultLegacyRoom = "default"
)

type link interface {
	Send(intent protocol.Intent) error
	Close() error
}

// Controller is the room lifecycle state machine. All methods must be called
// from the goroutine running Run.
type Controller struct {
	logger          *slog.Logger
	link            link
	renderer        render.Renderer
	notifier        *notify.Notifier
	geometry        input.Geometry
	defaultRoomName string

	session   *SessionContext
	connected bool
}

func NewController(
	logger *slog.Logger,
	sessionID string,
	link link,
	renderer render.Renderer,
	notifier *notify.Notifier,
	geometry input.Geometry,
	defaultRoomName string,
) *Controller {
	if defaultRoomName == "" {
		defaultRoomName = DefaultRoomName
	}

	session := NewSessionContext(sessionID)

	return &Controller{
		logger:          logger.With("component", "session", "session_id", session.ID),
		link:            link,
		renderer:        renderer,
		notifier:        notifier,
		geometry:        geometry,
		defaultRoomName: defaultRoomName,
		session:         session,
	}
}

func (that *Controller) SessionID() string {
	return that.session.ID
}

// Run consumes inbox until ctx ends or inbox is closed.
func (that *Controller) Run(ctx context.Context, inbox <-chan Msg) error {
	log := that.logger.With("method", "Run")
	log.Info("session loop started")

	that.render()

	for {
		select {
		case <-ctx.Done():
			log.Info("session loop stopped")
			return nil
		case msg, ok := <-inbox:
			if !ok {
				return nil
			}
			that.Handle(msg)
		}
	}
}

// Handle processes one message to completion, including any render.
func (that *Controller) Handle(msg Msg) {
	switch m := msg.(type) {
	case FromServer:
		that.handleServerEvent(m.Event)
	case CreateRoom:
		that.createRoom(m.Name)
	case JoinRoom:
		that.joinRoom(m.Code)
	case JoinLegacy:
		that.joinLegacy(m.Room)
	case Pointer:
		that.handlePointer(m.Event)
	case Key:
		that.handleKey(m.Name)
	case Leave:
		that.leave()
	case Connected:
		that.connected = true
		that.logger.Info("connected to server")
	case Disconnected:
		that.handleDisconnect(m.Err)
	case Expired:
		if that.notifier.Expire(m.Token) {
			that.render()
		}
	case GetView:
		m.Reply <- that.View()
	default:
		that.logger.Warn("unknown session message", "type", fmt.Sprintf("%T", msg))
	}

	if err := that.session.Room.Validate(); err != nil {
		that.logger.Error("session invariant broken", "error", err)
	}
}

func (that *Controller) View() View {
	room := that.session.Room
	view := View{
		SessionID:   that.session.ID,
		Phase:       room.Phase,
		RoomCode:    room.RoomCode,
		PlayerColor: room.PlayerColor,
		PlayerCount: room.PlayerCount,
		Connected:   that.connected,
	}

	if snap := that.session.Snapshots.Current(); snap != nil {
		view.CurrentPlayer = snap.CurrentPlayer
		view.GameOver = snap.GameOver
		view.Winner = snap.Winner
	}

	if sel := that.session.Selection.Selection(); sel.Selected {
		pos := sel.Position
		view.Selection = &pos
	}

	if msg, ok := that.notifier.Message(); ok {
		view.Notification = msg
	}

	return view
}

func (that *Controller) createRoom(name string) {
	log := that.logger.With("method", "createRoom")

	if !that.session.Room.IsModeSelect() {
		that.fail(apperror.ErrAlreadyInRoom)
		return
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = that.defaultRoomName
	}

	if !that.send(protocol.CreateRoom{RoomName: name}) {
		return
	}

	that.session.Room.Phase = entity.PhaseCreating
	log.Info("room requested", "name", name)

	that.render()
}

func (that *Controller) joinRoom(raw string) {
	log := that.logger.With("method", "joinRoom")

	if !that.session.Room.IsModeSelect() {
		that.fail(apperror.ErrAlreadyInRoom)
		return
	}

	code, err := entity.NormalizeRoomCode(raw)
	if err != nil {
		that.fail(err)
		return
	}

	if !that.send(protocol.JoinRoomByCode{RoomCode: code}) {
		return
	}

	that.session.Room.Phase = entity.PhaseJoining
	that.session.PendingRoom = code
	log.Info("join requested", "room", code)

	that.render()
}

func (that *Controller) joinLegacy(room string) {
	log := that.logger.With("method", "joinLegacy")

	if !that.session.Room.IsModeSelect() {
		that.fail(apperror.ErrAlreadyInRoom)
		return
	}

	room = strings.TrimSpace(room)
	if room == "" {
		room = DefaultLegacyRoom
	}

	if !that.send(protocol.JoinGame{Room: room}) {
		return
	}

	that.session.Room.Phase = entity.PhaseJoining
	that.session.PendingRoom = room
	that.session.Legacy = true
	log.Info("legacy join requested", "room", room)

	that.render()
}

func (that *Controller) handleServerEvent(event protocol.Event) {
	switch ev := event.(type) {
	case protocol.RoomCreated:
		that.onRoomCreated(ev)
	case protocol.PlayerJoined:
		that.onPlayerJoined(ev)
	case protocol.GameState:
		that.onGameState(ev)
	case protocol.Error:
		that.logger.Info("server rejected request", "message", ev.Message)
		that.notifier.Notify(ev.Message)
		that.render()
	default:
		that.logger.Warn("unhandled server event", "action", event.Action())
	}
}

func (that *Controller) onRoomCreated(ev protocol.RoomCreated) {
	log := that.logger.With("method", "onRoomCreated")
	room := &that.session.Room

	if !room.IsPending() || that.session.Legacy {
		log.Debug("ignoring room_created outside a pending request", "phase", room.Phase, "room", ev.RoomCode)
		return
	}

	room.RoomCode = ev.RoomCode
	if !room.PlayerColor.Valid() {
		room.PlayerColor = ev.PlayerColor
	}
	room.PlayerCount = max(room.PlayerCount, 1)
	room.Phase = entity.PhaseWaiting
	that.session.PendingRoom = ""

	log.Info("entered room", "room", room.RoomCode, "color", room.PlayerColor)

	that.syncPhase()
	that.render()
}

func (that *Controller) onPlayerJoined(ev protocol.PlayerJoined) {
	room := &that.session.Room

	if !room.InRoom() {
		that.logger.Debug("ignoring player_joined outside a room", "phase", room.Phase)
		return
	}

	room.PlayerCount = ev.PlayerCount

	that.syncPhase()
	that.render()
}

func (that *Controller) onGameState(ev protocol.GameState) {
	log := that.logger.With("method", "onGameState")
	room := &that.session.Room

	if that.session.Legacy && room.IsPending() {
		room.RoomCode = that.session.PendingRoom
		room.PlayerCount = max(room.PlayerCount, 1)
		room.Phase = entity.PhaseWaiting
		that.session.PendingRoom = ""
		log.Info("entered room", "room", room.RoomCode)
	}

	if !room.InRoom() {
		log.Debug("ignoring game_state outside a room", "phase", room.Phase)
		return
	}

	snap := ev.Snapshot(room.PlayerCount)
	if that.session.Snapshots.Apply(snap) {
		log.Debug("snapshot replaced", "turn", snap.CurrentPlayer, "game_over", snap.GameOver)
	}

	room.PlayerCount = snap.PlayerCount
	if snap.GameOver {
		that.session.Selection.Clear()
	}

	that.syncPhase()
	that.render()
}

// syncPhase moves between Waiting and Active as the player count crosses two.
// Applying it more than once is a no-op.
func (that *Controller) syncPhase() {
	room := &that.session.Room

	switch {
	case room.IsWaiting() && room.PlayerCount == entity.MaxPlayers:
		room.Phase = entity.PhaseActive
		that.logger.Info("game started", "room", room.RoomCode, "color", room.PlayerColor)
	case room.IsActive() && room.PlayerCount < entity.MaxPlayers:
		room.Phase = entity.PhaseWaiting
		that.session.Selection.Clear()
		that.logger.Info("opponent left", "room", room.RoomCode)
	}
}

func (that *Controller) handlePointer(ev input.Event) {
	log := that.logger.With("method", "handlePointer")

	pos, err := input.Normalize(ev, that.geometry)
	if err != nil {
		log.Debug("ignoring input", "error", err)
		return
	}

	if !that.session.Room.IsActive() {
		log.Debug("ignoring input outside an active game", "phase", that.session.Room.Phase)
		return
	}

	snap := that.session.Snapshots.Current()
	if snap != nil && snap.GameOver {
		that.fail(apperror.ErrGameFinished)
		return
	}

	res, err := that.session.Selection.HandleCoordinate(pos, snap, that.session.Room.PlayerColor)
	if err != nil {
		that.fail(err)
		return
	}

	if res.Intent != nil {
		log.Info("sending move", "from", res.Intent.From, "to", res.Intent.To)
		that.send(protocol.NewMakeMove(*res.Intent))
	}

	if res.Changed {
		that.render()
	}
}

func (that *Controller) handleKey(name string) {
	if name == KeyEscape && that.session.Room.IsActive() {
		that.leave()
	}
}

func (that *Controller) handleDisconnect(err error) {
	log := that.logger.With("method", "handleDisconnect")
	that.connected = false

	if that.session.Room.IsModeSelect() {
		log.Info("disconnected while idle", "error", err)
		return
	}

	log.Warn("connection lost", "error", err, "phase", that.session.Room.Phase)

	that.session.Reset()
	that.notifier.Notify(apperror.ErrConnectionLost.Error())
	that.render()
}

// leave tears down the connection and resets the session. It is idempotent.
func (that *Controller) leave() {
	log := that.logger.With("method", "leave")
	room := &that.session.Room

	if room.IsModeSelect() {
		return
	}

	log.Info("leaving room", "room", room.RoomCode, "phase", room.Phase)
	room.Phase = entity.PhaseLeft

	if err := that.link.Close(); err != nil {
		log.Warn("failed to close connection", "error", err)
	}

	that.session.Reset()
	that.notifier.Clear()
	that.render()
}

func (that *Controller) send(intent protocol.Intent) bool {
	if err := that.link.Send(intent); err != nil {
		that.logger.Error("failed to send", "action", intent.Action(), "error", err)

		if !errors.Is(err, apperror.ErrOutboxFull) {
			err = apperror.ErrConnectionLost
		}
		that.fail(err)

		return false
	}

	return true
}

// fail surfaces a local error through the notifier. Out-of-bounds input stays silent.
func (that *Controller) fail(err error) {
	if errors.Is(err, apperror.ErrOutOfBounds) {
		return
	}

	that.notifier.Notify(err.Error())
	that.render()
}

func (that *Controller) render() {
	msg, _ := that.notifier.Message()

	that.renderer.Render(render.Frame{
		Session:      that.session.Room,
		Snapshot:     that.session.Snapshots.Current(),
		Selection:    that.session.Selection.Selection(),
		Notification: msg,
	})
}
