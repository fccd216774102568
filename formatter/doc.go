// Package formatter turns events into their textual representation.
//
// Log events render through a LogFormatter: Text produces the
// human-readable "[LEVEL] message" form with optional timestamp, pid,
// and color; JSON produces a single-line record for machine sinks.
// Formatters return lines without a trailing newline; the renderer owns
// line termination because it also owns cursor movement around the
// progress-bar region.
//
// Progress bars render through FormatBar, which fits a description,
// percentage fill, counters, elapsed/ETA, and rate into a given
// terminal width. Layout math uses display width rather than byte
// length so descriptions with wide runes do not overflow the line.
package formatter
