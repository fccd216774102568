// Package core defines the event model shared across the framework.
//
// It provides the Level type for severity ordering and the two event
// kinds: LogEvent for log messages and ProgressEvent for progress-bar
// state changes. Events are immutable value types with no behavior of
// their own; how (and whether) they become visible output is decided
// entirely by the handlers on an effects.Stack.
//
// LogEvent keeps its message unformatted until a renderer asks for it,
// so building messages that no handler ever consumes stays cheap.
// ProgressEvent correlates all events of one progress operation through
// a uuid sequence id, which is what makes nested bars unambiguous.
package core
