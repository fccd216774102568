package core

// Event is a transient record describing something that happened: a log
// message or a progress change. Events are constructed per call, dispatched
// once, then discarded. Handlers must never mutate an event in place; a
// handler that wants to transform an event builds a derived copy instead.
type Event interface {
	event()
}

// LogEvent carries a single log message. Message is kept as-is and only
// stringified when a formatter renders it, so the formatting cost of
// messages that no handler consumes is never paid.
type LogEvent struct {
	Level   Level
	Message any

	// Fallback marks an event produced by the dispatch fallback. A
	// marked event that again goes unconsumed is dropped instead of
	// being re-forwarded, which bounds the fallback to one round.
	Fallback bool
}

func (LogEvent) event() {}

// NewLog constructs a log event for the given level and message.
func NewLog(level Level, message any) LogEvent {
	return LogEvent{Level: level, Message: message}
}

// Derive returns a copy of the event with a new message, preserving level
// and fallback mark. Handlers use this to re-emit transformed events
// without touching the original.
func (e LogEvent) Derive(message any) LogEvent {
	e.Message = message
	return e
}
