package node

import (
	"context"
	"time"

	"github.com/vastcore/vast/pkg/vasterr"
)

// DefaultInitialRequestTimeout is the timeout Status and send-command
// requests add on top of the caller's context (an earlier caller deadline
// still wins), named after the upstream
// defaults::system::initial_request_timeout.
const DefaultInitialRequestTimeout = 5 * time.Second

// MsgKind tags the payload a Message carries.
type MsgKind int

const (
	MsgShutdown MsgKind = iota
	MsgStatus
	MsgWire
	MsgSend
)

// WirePayload is the MsgWire payload: "you have been given this peer to
// play role Role", e.g. an exporter being handed an archive, an index, or a
// sink.
type WirePayload struct {
	Role   string
	Target *Handle
}

// Message is one entry in a component's mailbox. Reply is non-nil when the
// sender is awaiting a response; Shutdown and Wire are typically sent with
// a nil Reply (fire-and-forget), per spec.md §5.
type Message struct {
	Kind  MsgKind
	Wire  WirePayload
	Atom  string
	Reply chan Reply
}

// Reply is a one-shot response delivered back to a Request caller.
type Reply struct {
	Value map[string]any
	Err   error
}

// Handle is a component's mailbox plus its registry identity. Exactly one
// goroutine (the component's run loop) ever reads from mailbox or mutates
// whatever state that loop closes over, so components need no locks of
// their own — grounded on spec.md §5's "independent message-driven tasks"
// model.
type Handle struct {
	Type  string
	Label string

	mailbox chan Message
	done    chan struct{}
}

// newHandle allocates a Handle with a bounded mailbox; sends to a full
// mailbox block (backpressure), per spec.md §5's suspension points.
func newHandle(typ, label string) *Handle {
	return &Handle{
		Type:    typ,
		Label:   label,
		mailbox: make(chan Message, 16),
		done:    make(chan struct{}),
	}
}

// Send enqueues msg, blocking on backpressure until ctx is done.
func (h *Handle) Send(ctx context.Context, msg Message) error {
	select {
	case h.mailbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Request sends msg and awaits its reply before ctx's deadline. On timeout
// it records a vasterr.Timeout for this pending call and returns as if an
// error response had arrived — the component's goroutine is never
// interrupted and may still deliver (and drop) its reply later.
func (h *Handle) Request(ctx context.Context, msg Message) (map[string]any, error) {
	reply := make(chan Reply, 1)
	msg.Reply = reply
	if err := h.Send(ctx, msg); err != nil {
		return nil, err
	}
	select {
	case r := <-reply:
		return r.Value, r.Err
	case <-ctx.Done():
		return nil, vasterr.New(vasterr.Timeout, "component "+h.Label+" did not reply before deadline")
	}
}

// Shutdown sends a best-effort, fire-and-forget shutdown signal: the
// component acknowledges by terminating (closing Done), not by replying.
// Accepting the signal into the mailbox is all Shutdown waits for.
func (h *Handle) Shutdown(ctx context.Context) error {
	return h.Send(ctx, Message{Kind: MsgShutdown})
}

// Done returns a channel closed once the component's run loop has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }
