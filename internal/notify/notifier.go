package notify

import (
	"io"
	"log/slog"
	"time"
)

// DefaultWindow is how long a notification stays visible.
const DefaultWindow = 3 * time.Second

type Stopper interface {
	Stop() bool
}

type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

type SystemClock struct{}

func (SystemClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Haptic produces a short physical pulse. Implementations must not block.
type Haptic interface {
	Pulse() error
}

// Bell emits the terminal bell as the console's haptic pulse.
type Bell struct {
	out io.Writer
}

func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

func (that *Bell) Pulse() error {
	_, err := io.WriteString(that.out, "\a")
	return err
}

// Notifier shows one auto-dismissing message at a time.
// It is not safe for concurrent use: onExpire is expected to hand the token
// back to the owning goroutine, which then calls Expire.
type Notifier struct {
	logger   *slog.Logger
	window   time.Duration
	clock    Clock
	haptic   Haptic
	onExpire func(token uint64)

	message string
	visible bool
	token   uint64
	timer   Stopper
}

func New(logger *slog.Logger, window time.Duration, clock Clock, haptic Haptic, onExpire func(token uint64)) *Notifier {
	if window <= 0 {
		window = DefaultWindow
	}

	if clock == nil {
		clock = SystemClock{}
	}

	return &Notifier{
		logger:   logger.With("component", "notifier"),
		window:   window,
		clock:    clock,
		haptic:   haptic,
		onExpire: onExpire,
	}
}

// Notify replaces the visible message and restarts the dismissal window.
func (that *Notifier) Notify(message string) uint64 {
	that.stopTimer()

	that.token++
	that.message = message
	that.visible = true

	token := that.token
	that.timer = that.clock.AfterFunc(that.window, func() {
		if that.onExpire != nil {
			that.onExpire(token)
		}
	})

	if that.haptic != nil {
		if err := that.haptic.Pulse(); err != nil {
			that.logger.Debug("haptic pulse failed", "error", err)
		}
	}

	return token
}

// Expire dismisses the message if token belongs to the latest notification.
func (that *Notifier) Expire(token uint64) bool {
	if !that.visible || token != that.token {
		return false
	}

	that.visible = false
	that.message = ""
	that.timer = nil

	return true
}

// Clear dismisses any visible message immediately.
func (that *Notifier) Clear() bool {
	that.stopTimer()
	that.token++

	had := that.visible
	that.visible = false
	that.message = ""

	return had
}

func (that *Notifier) Message() (string, bool) {
	return that.message, that.visible
}

func (that *Notifier) stopTimer() {
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}
}
