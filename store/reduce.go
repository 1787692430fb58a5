package store

import (
	"fmt"

	"github.com/iw2rmb/markpad/buffer"
)

// Reduce applies a to s. Output is only recomputed when Input changes, on
// Refresh, or while s is Stale. When rendering fails the new input and
// selection are kept, Output keeps its previous value, Stale is set and the
// error is returned.
func Reduce(s State, a Action, r Renderer) (State, error) {
	if r == nil {
		return s, ErrNoRenderer
	}

	var next State
	switch a := a.(type) {
	case SetText:
		next = State{
			Input:     a.Text,
			Output:    s.Output,
			Selection: buffer.ClampSelection(a.Selection, buffer.RuneLen(a.Text)),
			Stale:     s.Stale,
		}
	case Clear:
		next = State{}
	case Refresh:
		next = s
	default:
		return s, fmt.Errorf("store: unknown action %T", a)
	}
	next.Version = s.Version + 1

	if next.Input == "" {
		next.Output = ""
		next.Stale = false
		return next, nil
	}
	if _, refresh := a.(Refresh); !refresh && !s.Stale && next.Input == s.Input {
		return next, nil
	}

	out, err := r.Render(next.Input)
	if err != nil {
		next.Stale = true
		return next, fmt.Errorf("store: render: %w", err)
	}
	next.Output = out
	next.Stale = false
	return next, nil
}
