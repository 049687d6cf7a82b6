package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/checkers-client/internal/entity"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
)

type decoder func(payload json.RawMessage) (Event, error)

var decoders = map[string]decoder{
	ActionRoomCreated:  decodeRoomCreated,
	ActionPlayerJoined: decodePlayerJoined,
	ActionGameState:    decodeGameState,
	ActionError:        decodeError,
}

// Encode wraps intent into an envelope.
func Encode(intent Intent) ([]byte, error) {
	payload, err := json.Marshal(intent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: intent.Action(), Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}

// Decode parses one inbound frame into a validated event.
func Decode(data []byte) (Event, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	decode, ok := decoders[msg.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, msg.Action)
	}

	event, err := decode(msg.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", msg.Action, err)
	}

	return event, nil
}

func unmarshalPayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: missing payload", ErrInvalidPayload)
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}

func validCount(count int) bool {
	return count >= 0 && count <= entity.MaxPlayers
}

func decodeRoomCreated(payload json.RawMessage) (Event, error) {
	var event RoomCreated
	if err := unmarshalPayload(payload, &event); err != nil {
		return nil, err
	}

	if len(event.RoomCode) != entity.RoomCodeLength || entity.SanitizeRoomCode(event.RoomCode) != event.RoomCode {
		return nil, fmt.Errorf("%w: room code %q", ErrInvalidPayload, event.RoomCode)
	}

	if !event.PlayerColor.Valid() {
		return nil, fmt.Errorf("%w: player color %q", ErrInvalidPayload, event.PlayerColor)
	}

	return event, nil
}

func decodePlayerJoined(payload json.RawMessage) (Event, error) {
	var event PlayerJoined
	if err := unmarshalPayload(payload, &event); err != nil {
		return nil, err
	}

	if !validCount(event.PlayerCount) {
		return nil, fmt.Errorf("%w: player count %d", ErrInvalidPayload, event.PlayerCount)
	}

	return event, nil
}

func decodeGameState(payload json.RawMessage) (Event, error) {
	var event GameState
	if err := unmarshalPayload(payload, &event); err != nil {
		return nil, err
	}

	if !event.CurrentPlayer.Valid() {
		return nil, fmt.Errorf("%w: current player %q", ErrInvalidPayload, event.CurrentPlayer)
	}

	if event.PlayerCount != nil && !validCount(*event.PlayerCount) {
		return nil, fmt.Errorf("%w: player count %d", ErrInvalidPayload, *event.PlayerCount)
	}

	if event.Winner != entity.NoColor && !event.Winner.Valid() {
		return nil, fmt.Errorf("%w: winner %q", ErrInvalidPayload, event.Winner)
	}

	return event, nil
}

func decodeError(payload json.RawMessage) (Event, error) {
	var event Error
	if err := unmarshalPayload(payload, &event); err != nil {
		return nil, err
	}

	return event, nil
}
