package widget

import (
	"context"
	"sync"
)

// Transition computes the next State from the current one
type Transition func(ctx context.Context, s State) (State, error)

// Session holds one State for concurrent callers. Every Apply runs as a single
// atomic step, so concurrent conversions never lose a history record.
type Session struct {
	lock  sync.Mutex
	state State
}

// NewSession returns a Session starting at s
func NewSession(s State) *Session {
	return &Session{state: s}
}

// Apply runs t against the current State and stores its result.
// On error the State returned by t is still stored, since transitions decide for
// themselves what an error leaves behind.
func (s *Session) Apply(ctx context.Context, t Transition) (State, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	next, err := t(ctx, s.state)
	s.state = next
	return next, err
}

// State returns the current State
func (s *Session) State() State {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state
}
