package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/checkers-client/internal/input"
	"github.com/rocketscienceinc/checkers-client/internal/session"
)

type poster interface {
	Post(msg session.Msg) bool
}

// Reader turns stdin lines into session messages.
type Reader struct {
	logger   *slog.Logger
	in       io.Reader
	out      io.Writer
	poster   poster
	geometry input.Geometry
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, poster poster, geometry input.Geometry) *Reader {
	return &Reader{
		logger:   logger.With("component", "console"),
		in:       in,
		out:      out,
		poster:   poster,
		geometry: geometry,
	}
}

// Run - reads commands until quit, end of input or ctx cancellation.
// It returns ErrQuit when the user asked to stop.
func (that *Reader) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	fmt.Fprint(that.out, Usage)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			log.Info("input closed")
			return ErrQuit
		case line := <-lines:
			msg, err := Parse(line, that.geometry)
			switch {
			case errors.Is(err, ErrQuit):
				return ErrQuit
			case errors.Is(err, errHelp):
				fmt.Fprint(that.out, Usage)
				continue
			case err != nil:
				fmt.Fprintf(that.out, "%v\n", err)
				continue
			case msg == nil:
				continue
			}

			if !that.poster.Post(msg) {
				return nil
			}
		}
	}
}
