package notify

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (that *fakeTimer) Stop() bool {
	was := !that.stopped
	that.stopped = true
	return was
}

type fakeClock struct {
	timers []*fakeTimer
}

func (that *fakeClock) AfterFunc(d time.Duration, f func()) Stopper {
	timer := &fakeTimer{d: d, f: f}
	that.timers = append(that.timers, timer)
	return timer
}

type MockHaptic struct {
	mock.Mock
}

func (that *MockHaptic) Pulse() error {
	args := that.Called()
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifier(t *testing.T) {
	t.Run("Notify shows the message and schedules dismissal", func(t *testing.T) {
		// Given: a notifier with a fake clock
		clock := &fakeClock{}
		n := New(discardLogger(), 0, clock, nil, nil)

		// When: notifying
		n.Notify("It's not your turn")

		// Then: the message is visible for the default window
		msg, visible := n.Message()
		assert.True(t, visible)
		assert.Equal(t, "It's not your turn", msg)
		require.Len(t, clock.timers, 1)
		assert.Equal(t, DefaultWindow, clock.timers[0].d)
	})

	t.Run("Timer hands its token back and Expire dismisses", func(t *testing.T) {
		// Given: a notifier that records expired tokens
		clock := &fakeClock{}
		var expired []uint64
		n := New(discardLogger(), time.Second, clock, nil, func(token uint64) { expired = append(expired, token) })
		token := n.Notify("boom")

		// When: the timer fires and the owner expires the token
		clock.timers[0].f()
		dismissed := n.Expire(expired[0])

		// Then: the message is gone
		assert.Equal(t, []uint64{token}, expired)
		assert.True(t, dismissed)
		_, visible := n.Message()
		assert.False(t, visible)
	})

	t.Run("A newer message restarts the window and ignores stale expiry", func(t *testing.T) {
		// Given: one message pending
		clock := &fakeClock{}
		n := New(discardLogger(), time.Second, clock, nil, nil)
		first := n.Notify("first")

		// When: a second message arrives and then the first timer's token expires
		second := n.Notify("second")
		stale := n.Expire(first)

		// Then: the first timer was stopped, the stale expiry did nothing
		assert.True(t, clock.timers[0].stopped)
		assert.False(t, stale)
		msg, visible := n.Message()
		assert.True(t, visible)
		assert.Equal(t, "second", msg)

		// And: the second token dismisses it
		assert.True(t, n.Expire(second))
	})

	t.Run("Clear dismisses immediately and invalidates the timer", func(t *testing.T) {
		clock := &fakeClock{}
		n := New(discardLogger(), time.Second, clock, nil, nil)
		token := n.Notify("msg")

		assert.True(t, n.Clear())
		assert.False(t, n.Expire(token))
		assert.True(t, clock.timers[0].stopped)
	})

	t.Run("Every notification pulses and pulse failure is not an error", func(t *testing.T) {
		// Given: a haptic that fails
		haptic := &MockHaptic{}
		haptic.On("Pulse").Return(errors.New("unsupported")).Twice()
		n := New(discardLogger(), time.Second, &fakeClock{}, haptic, nil)

		// When: notifying twice
		n.Notify("one")
		n.Notify("two")

		// Then: the haptic was asked both times and the message still shows
		haptic.AssertExpectations(t)
		msg, _ := n.Message()
		assert.Equal(t, "two", msg)
	})
}

func TestBell_Pulse(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewBell(&out).Pulse())
	assert.Equal(t, "\a", out.String())
}
