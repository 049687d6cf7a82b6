package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/checkers-client/internal/apperror"
	"github.com/rocketscienceinc/checkers-client/internal/protocol"
)

const (
	defaultOutboxSize       = 16
	defaultHandshakeTimeout = 10 * time.Second
	defaultWriteTimeout     = 5 * time.Second
	closeGracePeriod        = time.Second
)

var errClosedDuringDial = errors.New("connection closed while dialing")

type sink interface {
	ServerEvent(event protocol.Event)
	Connected()
	Disconnected(err error)
}

type Options struct {
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	OutboxSize       int
	Header           http.Header
}

// Client is a lazily dialing websocket connection to the game server.
// Send and Close may be called from any goroutine; Run owns all writes.
type Client struct {
	logger       *slog.Logger
	url          string
	sink         sink
	dialer       *websocket.Dialer
	header       http.Header
	writeTimeout time.Duration

	outbox chan []byte

	mu    sync.Mutex
	conn  *websocket.Conn
	epoch uint64
}

func New(logger *slog.Logger, url string, sink sink, opts Options) *Client {
	if opts.OutboxSize <= 0 {
		opts.OutboxSize = defaultOutboxSize
	}

	if opts.HandshakeTimeout <= 0 {
		opts.HandshakeTimeout = defaultHandshakeTimeout
	}

	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}

	return &Client{
		logger: logger.With("component", "websocket", "url", url),
		url:    url,
		sink:   sink,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.HandshakeTimeout,
		},
		header:       opts.Header,
		writeTimeout: opts.WriteTimeout,
		outbox:       make(chan []byte, opts.OutboxSize),
	}
}

// Send - queues an intent without blocking.
func (that *Client) Send(intent protocol.Intent) error {
	frame, err := protocol.Encode(intent)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", intent.Action(), err)
	}

	select {
	case that.outbox <- frame:
		return nil
	default:
		return apperror.ErrOutboxFull
	}
}

// Close - drops queued frames and closes the current connection without reporting a disconnect.
// The next Send dials again.
func (that *Client) Close() error {
	that.mu.Lock()
	conn := that.conn
	that.conn = nil
	that.epoch++
	that.mu.Unlock()

	that.drain()

	if conn == nil {
		return nil
	}

	that.logger.Info("closing connection")

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))

	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}

// Run - writes queued frames until ctx ends, dialing whenever there is no connection.
func (that *Client) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			if err := that.Close(); err != nil {
				log.Warn("failed to close on shutdown", "error", err)
			}
			return nil
		case frame := <-that.outbox:
			if err := that.write(ctx, frame); err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Error("failed to deliver frame", "error", err)
				that.sink.Disconnected(err)
			}
		}
	}
}

func (that *Client) drain() {
	for {
		select {
		case <-that.outbox:
		default:
			return
		}
	}
}

// ensureConn - returns the live connection, dialing a new one if needed.
func (that *Client) ensureConn(ctx context.Context) (*websocket.Conn, error) {
	that.mu.Lock()
	if that.conn != nil {
		conn := that.conn
		that.mu.Unlock()
		return conn, nil
	}
	epoch := that.epoch
	that.mu.Unlock()

	conn, resp, err := that.dialer.DialContext(ctx, that.url, that.header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", that.url, err)
	}

	that.mu.Lock()
	if that.epoch != epoch {
		that.mu.Unlock()
		conn.Close()
		return nil, errClosedDuringDial
	}
	that.conn = conn
	that.mu.Unlock()

	that.logger.Info("connection established")

	go that.readLoop(conn)
	that.sink.Connected()

	return conn, nil
}

// detach - forgets conn if it is still current and reports whether it was.
func (that *Client) detach(conn *websocket.Conn) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.conn != conn {
		return false
	}

	that.conn = nil
	conn.Close()

	return true
}
