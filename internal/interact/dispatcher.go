// Package interact delivers tool-use events to an ordered chain of handlers.
package interact

import (
	"sync"

	"github.com/go-theft-craft/tilefill/pkg/fill"
)

// Event is a single tool use: the block at Pos, identity Touched, was used
// on Face while Item was held.
type Event struct {
	Pos     fill.Pos
	Face    fill.Face
	Touched fill.Block
	Item    fill.Block
}

// Interaction strips the held item from the event.
func (e Event) Interaction() fill.Interaction {
	return fill.Interaction{Pos: e.Pos, Face: e.Face, Touched: e.Touched}
}

// Handler reacts to tool-use events.
type Handler interface {
	HandleUse(ev Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event)

func (f HandlerFunc) HandleUse(ev Event) { f(ev) }

// Dispatcher calls its handlers in registration order. Registering a
// handler never replaces one registered before it.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
}

// Register appends h to the chain.
func (d *Dispatcher) Register(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers)
}

// Dispatch delivers ev to every handler. Handlers registered while a
// dispatch is running see the next event, not this one.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	chain := make([]Handler, len(d.handlers))
	copy(chain, d.handlers)
	d.mu.RUnlock()

	for _, h := range chain {
		h.HandleUse(ev)
	}
}
