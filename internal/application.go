package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/checkers-client/internal/config"
	"github.com/rocketscienceinc/checkers-client/internal/input"
	"github.com/rocketscienceinc/checkers-client/internal/notify"
	"github.com/rocketscienceinc/checkers-client/internal/render"
	"github.com/rocketscienceinc/checkers-client/internal/session"
	"github.com/rocketscienceinc/checkers-client/transport/console"
	"github.com/rocketscienceinc/checkers-client/transport/rest"
	"github.com/rocketscienceinc/checkers-client/transport/websocket"
)

const sessionHeader = "X-Session-ID"

// RunApp - runs the client on the process stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the session loop, the transports and the console together and blocks until one of them stops.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	group, ctx := errgroup.WithContext(ctx)

	sessionID := uuid.NewString()
	mailbox := session.NewMailbox(ctx, conf.Session.MailboxSize)

	geometry := input.Geometry{
		OriginX: conf.Board.OriginX,
		OriginY: conf.Board.OriginY,
		Width:   conf.Board.PixelWidth,
	}

	var haptic notify.Haptic
	if !conf.Notifier.NoHaptics {
		haptic = notify.NewBell(out)
	}
	notifier := notify.New(logger, conf.Notifier.DismissAfter, notify.SystemClock{}, haptic, mailbox.Expire)

	header := http.Header{}
	header.Set(sessionHeader, sessionID)
	client := websocket.New(logger, conf.Server.GetURL(), mailbox, websocket.Options{
		HandshakeTimeout: conf.Server.HandshakeTimeout,
		WriteTimeout:     conf.Server.WriteTimeout,
		OutboxSize:       conf.Session.OutboxSize,
		Header:           header,
	})

	controller := session.NewController(
		logger,
		sessionID,
		client,
		render.NewText(out),
		notifier,
		geometry,
		conf.Session.DefaultRoomName,
	)

	log.Info("Starting session", "session_id", sessionID, "server", conf.Server.GetURL())

	group.Go(func() error {
		return controller.Run(ctx, mailbox.Messages())
	})

	group.Go(func() error {
		return client.Run(ctx)
	})

	group.Go(func() error {
		return console.New(logger, in, out, mailbox, geometry).Run(ctx)
	})

	if conf.HTTPPort != "" {
		server := rest.New(logger, conf.HTTPPort, rest.NewHandlers(mailbox))
		group.Go(func() error {
			return server.Start(ctx)
		})
	}

	err := group.Wait()
	if errors.Is(err, console.ErrQuit) {
		log.Info("Console closed, shutting down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("client stopped: %w", err)
	}

	return nil
}
