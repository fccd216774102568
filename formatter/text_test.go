package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ludvb/effects-logging/core"
)

func TestText_Format(t *testing.T) {
	f := NewText(Config{})

	got := f.Format(core.NewLog(core.InfoLevel, "service ready"))
	if got != "[INFO] service ready" {
		t.Errorf("Format() = %q, want %q", got, "[INFO] service ready")
	}

	got = f.Format(core.NewLog(core.Level(42), "odd level"))
	if got != "[LEVEL(42)] odd level" {
		t.Errorf("Format() = %q, want %q", got, "[LEVEL(42)] odd level")
	}
}

func TestText_FormatMultiline(t *testing.T) {
	f := NewText(Config{})

	got := f.Format(core.NewLog(core.ErrorLevel, "first\nsecond\nthird"))
	want := "[ERROR] + first\n[ERROR] | second\n[ERROR] + third"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestText_FormatColorized(t *testing.T) {
	plain := NewText(Config{})
	colored := NewText(Config{Colorize: true})

	ev := core.NewLog(core.ErrorLevel, "boom")
	if strings.Contains(plain.Format(ev), "\x1b[") {
		t.Error("plain formatter must not emit escape sequences")
	}
	got := colored.Format(ev)
	if !strings.Contains(got, "\x1b[") {
		t.Error("colorized formatter should emit escape sequences")
	}
	if StripANSI(got) != plain.Format(ev) {
		t.Errorf("stripped colorized output %q differs from plain output %q",
			StripANSI(got), plain.Format(ev))
	}
}

func TestText_LazyStringification(t *testing.T) {
	f := NewText(Config{})
	calls := 0
	msg := lazy(func() string { calls++; return "deferred" })

	ev := core.NewLog(core.DebugLevel, msg)
	if calls != 0 {
		t.Fatalf("message rendered %d times before formatting", calls)
	}
	if got := f.Format(ev); got != "[DEBUG] deferred" {
		t.Errorf("Format() = %q", got)
	}
	if calls != 1 {
		t.Errorf("message rendered %d times, want 1", calls)
	}
}

type lazy func() string

func (l lazy) String() string { return l() }

func TestJSON_Format(t *testing.T) {
	f := NewJSON(Config{})

	got := f.Format(core.NewLog(core.WarningLevel, "look\nout"))
	if strings.Contains(got, "\n") {
		t.Errorf("JSON record must be single-line, got %q", got)
	}

	var rec struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(got), &rec); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if rec.Level != "WARNING" || rec.Message != "look\nout" {
		t.Errorf("record = %+v", rec)
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m plain \x1b[1;33mbold yellow\x1b[m"
	if got := StripANSI(in); got != "red plain bold yellow" {
		t.Errorf("StripANSI() = %q", got)
	}
}
