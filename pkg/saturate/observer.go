package saturate

import (
	"fmt"
	"sync"
)

// Observer receives engine events in the order they happen.
type Observer[L any] interface {
	// Found is called when line is accepted into the antichain. via is the
	// line whose combination round produced it, or nil for a seed.
	Found(line L, via *L)
	// RemovedFromTodo is called when old leaves the work queue because the
	// newly accepted by dominates it.
	RemovedFromTodo(old, by L)
	// RemovedFromDone is called when old leaves the antichain because the
	// newly accepted by dominates it.
	RemovedFromDone(old, by L)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs[L any] struct {
	OnFound           func(line L, via *L)
	OnRemovedFromTodo func(old, by L)
	OnRemovedFromDone func(old, by L)
}

func (f ObserverFuncs[L]) Found(line L, via *L) {
	if f.OnFound != nil {
		f.OnFound(line, via)
	}
}

func (f ObserverFuncs[L]) RemovedFromTodo(old, by L) {
	if f.OnRemovedFromTodo != nil {
		f.OnRemovedFromTodo(old, by)
	}
}

func (f ObserverFuncs[L]) RemovedFromDone(old, by L) {
	if f.OnRemovedFromDone != nil {
		f.OnRemovedFromDone(old, by)
	}
}

type nopObserver[L any] struct{}

func (nopObserver[L]) Found(L, *L)            {}
func (nopObserver[L]) RemovedFromTodo(_, _ L) {}
func (nopObserver[L]) RemovedFromDone(_, _ L) {}

// EventKind identifies an engine event.
type EventKind int

const (
	EventFound EventKind = iota
	EventRemovedFromTodo
	EventRemovedFromDone
)

func (k EventKind) String() string {
	switch k {
	case EventFound:
		return "found"
	case EventRemovedFromTodo:
		return "removed from todo"
	case EventRemovedFromDone:
		return "removed from done"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one recorded engine event. For EventFound, Other is the via line
// (nil for seeds); for removals, Other is the dominating line.
type Event[L any] struct {
	Kind  EventKind
	Line  L
	Other *L
}

// Recorder is an Observer that stores every event.
type Recorder[L any] struct {
	mu     sync.Mutex
	events []Event[L]
}

func (r *Recorder[L]) add(e Event[L]) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *Recorder[L]) Found(line L, via *L) {
	r.add(Event[L]{Kind: EventFound, Line: line, Other: via})
}

func (r *Recorder[L]) RemovedFromTodo(old, by L) {
	r.add(Event[L]{Kind: EventRemovedFromTodo, Line: old, Other: &by})
}

func (r *Recorder[L]) RemovedFromDone(old, by L) {
	r.add(Event[L]{Kind: EventRemovedFromDone, Line: old, Other: &by})
}

// Events returns a copy of the recorded events.
func (r *Recorder[L]) Events() []Event[L] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event[L], len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards all recorded events.
func (r *Recorder[L]) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
