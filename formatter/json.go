package formatter

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ludvb/effects-logging/core"
)

// JSON formats log events as single-line JSON records, for sinks that
// feed log processors rather than humans.
type JSON struct {
	cfg Config
	pid int
}

// NewJSON creates a new JSON formatter
func NewJSON(cfg Config) *JSON {
	return &JSON{cfg: cfg, pid: os.Getpid()}
}

type jsonRecord struct {
	Level   string `json:"level"`
	Time    string `json:"time,omitempty"`
	PID     int    `json:"pid,omitempty"`
	Message string `json:"message"`
}

// Format renders the event as one JSON object
func (f *JSON) Format(ev core.LogEvent) string {
	rec := jsonRecord{
		Level:   ev.Level.String(),
		Message: fmt.Sprint(ev.Message),
	}
	if f.cfg.TimestampFormat != "" {
		rec.Time = time.Now().Format(f.cfg.TimestampFormat)
	}
	if f.cfg.IncludePID {
		rec.PID = f.pid
	}
	data, err := json.Marshal(rec)
	if err != nil {
		// Marshalling plain strings cannot fail; keep a readable record anyway.
		return fmt.Sprintf(`{"level":%q,"message":"marshal error: %v"}`, rec.Level, err)
	}
	return string(data)
}
