// Package viewport tracks the terminal window size and fans resize events out
// to subscribers that hold explicit subscription handles.
package viewport

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultBreakpoint is the widest terminal, in columns, still classified narrow.
const DefaultBreakpoint = 80

// Class is a breakpoint-based viewport category.
type Class int

const (
	Narrow Class = iota
	Wide
)

func (c Class) String() string {
	switch c {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Classify returns Narrow when width <= breakpoint. A non-positive breakpoint
// falls back to DefaultBreakpoint.
func Classify(width, breakpoint int) Class {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width <= breakpoint {
		return Narrow
	}
	return Wide
}

// Window holds the current size and notifies subscribers when it changes.
type Window struct {
	mu   sync.Mutex
	size Size
	subs map[string]func(Size)
	// order keeps delivery deterministic.
	order []string
}

// NewWindow returns a Window with an initial size.
func NewWindow(initial Size) *Window {
	return &Window{size: initial, subs: make(map[string]func(Size))}
}

// Size returns the last published size.
func (w *Window) Size() Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Subscribe registers fn for resize events. The returned handle removes it.
func (w *Window) Subscribe(fn func(Size)) *Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := uuid.NewString()
	w.subs[id] = fn
	w.order = append(w.order, id)
	return &Subscription{id: id, window: w}
}

// Resize stores the new size and delivers it to every subscriber. Delivery
// happens outside the lock so handlers may subscribe or unsubscribe.
func (w *Window) Resize(size Size) {
	w.mu.Lock()
	w.size = size
	handlers := make([]func(Size), 0, len(w.order))
	for _, id := range w.order {
		handlers = append(handlers, w.subs[id])
	}
	w.mu.Unlock()

	for _, fn := range handlers {
		fn(size)
	}
}

// Subscribers returns the number of live subscriptions.
func (w *Window) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

func (w *Window) remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.subs[id]; !ok {
		return
	}
	delete(w.subs, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Subscription is a handle to one registered resize handler.
type Subscription struct {
	id     string
	window *Window
	once   sync.Once
}

// ID identifies the subscription.
func (s *Subscription) ID() string { return s.id }

// Unsubscribe removes the handler. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() { s.window.remove(s.id) })
}
