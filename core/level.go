package core

import "strconv"

// Level represents the severity of a log event. Levels are ordered by
// their numeric value; values between or beyond the named constants are
// legal and sort accordingly.
type Level int

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = 0
	// InfoLevel for general informational messages
	InfoLevel Level = 10
	// WarningLevel for warning messages
	WarningLevel Level = 50
	// ErrorLevel for error messages
	ErrorLevel Level = 100
)

// String returns the string representation of the level. Unnamed levels
// render as "LEVEL(n)".
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}
