// Package command queues menu item activations as Bubble Tea commands.
package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"menucascade/internal/logging/events"
)

// Action is the work a menu item performs when invoked. The returned
// message is fed back into the program loop; nil means fire-and-forget.
type Action func() tea.Msg

// Request encapsulates an item activation.
type Request struct {
	ID      string
	Label   string
	Handler Action
}

// Bus collects activations raised while an input event is being routed.
// Routing happens synchronously inside Update, so the model drains the
// queue right after dispatch; no locking is needed.
type Bus struct {
	queue []tea.Cmd
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an item action into a Bubble Tea command while emitting
// trace logs, and queues it for the next Drain.
func (b *Bus) Execute(req Request) {
	events.Command.Queue(req.ID, req.Label)
	b.queue = append(b.queue, func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	})
}

// Drain returns the queued commands and empties the queue.
func (b *Bus) Drain() []tea.Cmd {
	cmds := b.queue
	b.queue = nil
	return cmds
}
