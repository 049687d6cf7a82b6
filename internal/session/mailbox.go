package session

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/checkers-client/internal/protocol"
)

const DefaultMailboxSize = 64

// Mailbox is the single inbound queue of the controller loop. Any goroutine may post.
type Mailbox struct {
	ctx context.Context
	ch  chan Msg
}

func NewMailbox(ctx context.Context, size int) *Mailbox {
	if size <= 0 {
		size = DefaultMailboxSize
	}

	return &Mailbox{ctx: ctx, ch: make(chan Msg, size)}
}

// Post blocks until msg is queued or the mailbox context ends.
func (that *Mailbox) Post(msg Msg) bool {
	select {
	case that.ch <- msg:
		return true
	case <-that.ctx.Done():
		return false
	}
}

func (that *Mailbox) Messages() <-chan Msg {
	return that.ch
}

func (that *Mailbox) ServerEvent(event protocol.Event) {
	that.Post(FromServer{Event: event})
}

func (that *Mailbox) Connected() {
	that.Post(Connected{})
}

func (that *Mailbox) Disconnected(err error) {
	that.Post(Disconnected{Err: err})
}

func (that *Mailbox) Expire(token uint64) {
	that.Post(Expired{Token: token})
}

// QueryView asks the loop for a copy of its visible state.
func (that *Mailbox) QueryView(ctx context.Context) (View, error) {
	reply := make(chan View, 1)
	if !that.Post(GetView{Reply: reply}) {
		return View{}, fmt.Errorf("failed to query view: %w", that.ctx.Err())
	}

	select {
	case view := <-reply:
		return view, nil
	case <-ctx.Done():
		return View{}, fmt.Errorf("failed to query view: %w", ctx.Err())
	case <-that.ctx.Done():
		return View{}, fmt.Errorf("failed to query view: %w", that.ctx.Err())
	}
}
