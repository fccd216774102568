package logger

import (
	"fmt"

	"github.com/ludvb/effects-logging/core"
	"github.com/ludvb/effects-logging/effects"
)

// Lazy defers building a message until a renderer actually formats it.
// Useful when the message is expensive to construct and may end up
// filtered or unconsumed.
type Lazy func() string

// String invokes the deferred constructor
func (l Lazy) String() string { return l() }

// Log sends a log event at the given level through the stack. The
// returned error is a rendering failure (e.g. the destination stream
// became unwritable); an event that no handler consumes is not an error,
// it triggers the stack's fallback policy instead.
func Log(stack *effects.Stack, level core.Level, message any) error {
	return stack.Send(core.NewLog(level, message))
}

// Debug logs a message at DEBUG level
func Debug(stack *effects.Stack, message any) error {
	return Log(stack, core.DebugLevel, message)
}

// Info logs a message at INFO level
func Info(stack *effects.Stack, message any) error {
	return Log(stack, core.InfoLevel, message)
}

// Warning logs a message at WARNING level
func Warning(stack *effects.Stack, message any) error {
	return Log(stack, core.WarningLevel, message)
}

// Error logs a message at ERROR level
func Error(stack *effects.Stack, message any) error {
	return Log(stack, core.ErrorLevel, message)
}

// Logf logs a format string whose expansion is deferred until rendering.
func Logf(stack *effects.Stack, level core.Level, format string, args ...any) error {
	return Log(stack, level, Lazy(func() string {
		return fmt.Sprintf(format, args...)
	}))
}

// Debugf logs a formatted message at DEBUG level
func Debugf(stack *effects.Stack, format string, args ...any) error {
	return Logf(stack, core.DebugLevel, format, args...)
}

// Infof logs a formatted message at INFO level
func Infof(stack *effects.Stack, format string, args ...any) error {
	return Logf(stack, core.InfoLevel, format, args...)
}

// Warningf logs a formatted message at WARNING level
func Warningf(stack *effects.Stack, format string, args ...any) error {
	return Logf(stack, core.WarningLevel, format, args...)
}

// Errorf logs a formatted message at ERROR level
func Errorf(stack *effects.Stack, format string, args ...any) error {
	return Logf(stack, core.ErrorLevel, format, args...)
}
