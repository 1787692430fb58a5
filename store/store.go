package store

import (
	"context"
	"errors"
	"sync"

	"pkt.systems/pslog"
)

// ErrNoRenderer is returned when a Store is built without a Renderer.
var ErrNoRenderer = errors.New("store: no renderer")

// Store holds State and serializes actions against it. Subscribers run after
// the lock is released, in subscription order.
type Store struct {
	mu       sync.Mutex
	state    State
	renderer Renderer
	log      pslog.Logger

	subs   map[int]func(State)
	order  []int
	nextID int
}

// New creates a store with initial as its document. The logger is taken from
// ctx. A failed first render is logged and leaves Output empty and Stale
// set, so the next action renders again.
func New(ctx context.Context, r Renderer, initial string) (*Store, error) {
	if r == nil {
		return nil, ErrNoRenderer
	}
	s := &Store{
		renderer: r,
		log:      pslog.Ctx(ctx).With("component", "store"),
		subs:     map[int]func(State){},
	}
	state, err := Reduce(State{}, SetText{Text: initial}, r)
	if err != nil {
		s.log.Warn("initial render failed", "err", err)
	}
	s.state = state
	return s, nil
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and notifies subscribers. Render failures are logged
// and leave the previous preview in place.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	next, err := Reduce(s.state, a, s.renderer)
	if err != nil {
		s.log.Warn("dispatch failed", "action", actionName(a), "err", err)
	} else {
		s.log.Debug("dispatch", "action", actionName(a), "version", next.Version, "input_len", len(next.Input))
	}
	s.state = next
	subs := make([]func(State), 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn for every dispatched action and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func actionName(a Action) string {
	switch a.(type) {
	case SetText:
		return "set_text"
	case Clear:
		return "clear"
	case Refresh:
		return "refresh"
	default:
		return "unknown"
	}
}
