package effects

import (
	"fmt"
	"sync"

	"github.com/ludvb/effects-logging/core"
)

// Stack is an ordered set of active handlers. The most recently pushed
// handler is innermost and sees events first. A Stack is an explicit
// context object: independent stacks never share state, so separate
// scopes (and separate tests) cannot contaminate each other.
type Stack struct {
	mu      sync.Mutex
	entries []*entry
}

// entry wraps a handler so removal works by identity even when the same
// handler value (or a non-comparable HandlerFunc) is pushed twice.
type entry struct {
	h Handler
}

// New creates an empty handler stack.
func New() *Stack {
	return &Stack{}
}

// Push installs a handler as the new innermost interceptor. The returned
// function removes exactly this installation, wherever it sits in the
// stack by then; calling it more than once is a no-op.
func (s *Stack) Push(h Handler) (remove func()) {
	e := &entry{h: h}
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i := len(s.entries) - 1; i >= 0; i-- {
				if s.entries[i] == e {
					s.entries = append(s.entries[:i], s.entries[i+1:]...)
					return
				}
			}
		})
	}
}

// Len returns the number of installed handlers.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Send offers the event to the installed handlers, innermost first. If no
// handler reports Handled or Consumed, the fallback policy applies: an
// unconsumed log event is re-sent once as a WARNING-level event carrying
// the fallback mark; if that again goes unconsumed it is dropped.
// Unconsumed progress events have no effect.
//
// The first handler error aborts the dispatch and is returned to the
// sender; silently losing output is worse than failing loudly.
func (s *Stack) Send(ev core.Event) error {
	handled, err := s.dispatch(ev)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	le, ok := ev.(core.LogEvent)
	if !ok || le.Fallback {
		return nil
	}
	fb := core.NewLog(core.WarningLevel,
		fmt.Sprintf("no handler consumed log event (level=%s): %v", le.Level, le.Message))
	fb.Fallback = true
	_, err = s.dispatch(fb)
	return err
}

// dispatch walks the stack innermost to outermost, threading any handler
// transformations through to the remaining handlers.
func (s *Stack) dispatch(ev core.Event) (bool, error) {
	s.mu.Lock()
	snapshot := make([]*entry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.Unlock()

	handled := false
	for i := len(snapshot) - 1; i >= 0; i-- {
		next, decision, err := snapshot[i].h.Handle(ev)
		if err != nil {
			return handled, err
		}
		if next != nil {
			ev = next
		}
		switch decision {
		case Consumed:
			return true, nil
		case Handled:
			handled = true
		}
	}
	return handled, nil
}
