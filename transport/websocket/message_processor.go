package websocket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/checkers-client/internal/protocol"
)

// write - sends one text frame over the current connection.
func (that *Client) write(ctx context.Context, frame []byte) error {
	conn, err := that.ensureConn(ctx)
	if errors.Is(err, errClosedDuringDial) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := conn.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
		return that.fail(conn, fmt.Errorf("failed to set write deadline: %w", err))
	}

	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return that.fail(conn, fmt.Errorf("failed to write frame: %w", err))
	}

	return nil
}

// fail - reports err only if conn was not closed on purpose.
func (that *Client) fail(conn *websocket.Conn, err error) error {
	if that.detach(conn) {
		return err
	}

	return nil
}

// readLoop - decodes inbound frames and hands them to the sink until the connection ends.
func (that *Client) readLoop(conn *websocket.Conn) {
	log := that.logger.With("method", "readLoop")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if that.detach(conn) {
				log.Warn("connection lost", "error", err)
				that.sink.Disconnected(err)
			}
			return
		}

		event, err := protocol.Decode(data)
		if err != nil {
			log.Warn("dropping frame", "error", err)
			continue
		}

		log.Debug("received", "action", event.Action())
		that.sink.ServerEvent(event)
	}
}
