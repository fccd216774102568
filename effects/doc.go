// Package effects implements the handler stack that dispatches events
// to interested interceptors.
//
// A Stack holds an ordered set of handlers; the most recently pushed
// handler is innermost and is offered each event first. A handler may
// ignore an event (Pass), act on it and let it continue to the handlers
// further out (Handled), or act on it and stop propagation (Consumed).
// Handlers can also transform-and-reforward by returning a derived
// event, which replaces the original for the rest of the walk.
//
// When a log event reaches the end of the stack without having been
// handled, the stack re-sends it once as a WARNING-level event so a
// partially configured program still surfaces its messages somewhere.
// The re-sent event carries a mark that excludes it from a second
// fallback round, so dispatch terminates even with no handlers at all.
// Unconsumed progress events are simply dropped: progress reporting is
// advisory and must never affect the iteration it describes.
package effects
