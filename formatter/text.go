package formatter

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/ludvb/effects-logging/core"
)

// Text formats log events as human-readable lines: "[LEVEL] message",
// optionally with timestamp and pid. Messages spanning several lines are
// boxed with "+" on the first and last line and "|" in between, each
// line carrying the full prefix so interleaved output stays attributable.
type Text struct {
	cfg     Config
	profile termenv.Profile
	pid     string
}

// NewText creates a new text formatter
func NewText(cfg Config) *Text {
	profile := termenv.Ascii
	if cfg.Colorize {
		profile = termenv.ANSI
	}
	return &Text{
		cfg:     cfg,
		profile: profile,
		pid:     strconv.Itoa(os.Getpid()),
	}
}

// levelColor maps named levels to their ANSI color. Unnamed levels stay
// uncolored.
func levelColor(level core.Level) string {
	switch {
	case level <= core.DebugLevel:
		return "8" // grey
	case level >= core.ErrorLevel:
		return "1" // red
	case level >= core.WarningLevel:
		return "3" // yellow
	default:
		return ""
	}
}

// Format renders the event. The message is stringified here and not
// earlier; this is where the lazy-message contract pays off.
func (f *Text) Format(ev core.LogEvent) string {
	levelTag := ev.Level.String()
	if c := levelColor(ev.Level); c != "" {
		levelTag = f.profile.String(levelTag).Foreground(f.profile.Color(c)).String()
	}

	var prefix strings.Builder
	prefix.WriteByte('[')
	prefix.WriteString(levelTag)
	prefix.WriteByte(']')
	if f.cfg.TimestampFormat != "" {
		prefix.WriteByte(' ')
		prefix.WriteString(time.Now().Format(f.cfg.TimestampFormat))
	}
	if f.cfg.IncludePID {
		pid := f.profile.String("(" + f.pid + ")").Foreground(f.profile.Color("8")).String()
		prefix.WriteByte(' ')
		prefix.WriteString(pid)
	}

	lines := strings.Split(fmt.Sprint(ev.Message), "\n")
	if len(lines) > 1 {
		lines[0] = "+ " + lines[0]
		for i := 1; i < len(lines)-1; i++ {
			lines[i] = "| " + lines[i]
		}
		lines[len(lines)-1] = "+ " + lines[len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = prefix.String() + " " + line
	}
	return strings.Join(lines, "\n")
}
