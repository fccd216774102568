package formatter

import (
	"regexp"

	"github.com/ludvb/effects-logging/core"
)

// LogFormatter turns a log event into its textual record, without a
// trailing newline. Multi-line messages may format to multiple lines.
type LogFormatter interface {
	Format(ev core.LogEvent) string
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat is the time layout for a timestamp after the level
	// tag. Empty disables timestamps.
	TimestampFormat string
	// IncludePID adds the process id to each record
	IncludePID bool
	// Colorize enables ANSI colors for the level tag. Leave disabled for
	// non-terminal sinks; renderers strip escapes there regardless.
	Colorize bool
}

// ansiEscape matches SGR escape sequences, the only escapes the built-in
// formatters emit.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI color sequences from s. Renderers apply this to
// every log line bound for a non-terminal destination so that piped or
// redirected output stays clean even when the message itself carries
// escapes.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}
