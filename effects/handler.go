package effects

import "github.com/ludvb/effects-logging/core"

// Decision is a handler's verdict on an offered event.
type Decision int

const (
	// Pass means the handler was not interested; the event continues
	// outward unchanged and does not count as consumed.
	Pass Decision = iota
	// Handled means the handler acted on the event but propagation
	// continues, so sibling handlers (e.g. a second renderer on another
	// destination) still receive it.
	Handled
	// Consumed means the handler acted and propagation stops here.
	Consumed
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case Pass:
		return "Pass"
	case Handled:
		return "Handled"
	case Consumed:
		return "Consumed"
	default:
		return "Unknown"
	}
}

// Handler is an interceptor on a Stack. Handle is offered every event
// sent through the stack, innermost handler first.
//
// The returned event replaces the offered one for handlers further out,
// which is how a handler transforms-and-reforwards (e.g. to prepend
// context). Returning nil keeps the event unchanged. A non-nil error
// aborts the dispatch and propagates to the sender.
type Handler interface {
	Handle(ev core.Event) (core.Event, Decision, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ev core.Event) (core.Event, Decision, error)

// Handle calls fn
func (fn HandlerFunc) Handle(ev core.Event) (core.Event, Decision, error) {
	return fn(ev)
}

// LogFunc adapts a function that only cares about log events. All other
// event kinds pass through untouched.
func LogFunc(fn func(ev core.LogEvent) (core.Event, Decision, error)) Handler {
	return HandlerFunc(func(ev core.Event) (core.Event, Decision, error) {
		if le, ok := ev.(core.LogEvent); ok {
			return fn(le)
		}
		return nil, Pass, nil
	})
}

// ProgressFunc adapts a function that only cares about progress events.
// All other event kinds pass through untouched.
func ProgressFunc(fn func(ev core.ProgressEvent) (core.Event, Decision, error)) Handler {
	return HandlerFunc(func(ev core.Event) (core.Event, Decision, error) {
		if pe, ok := ev.(core.ProgressEvent); ok {
			return fn(pe)
		}
		return nil, Pass, nil
	})
}
