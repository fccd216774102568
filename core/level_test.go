package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{Level(42), "LEVEL(42)"},
		{Level(-5), "LEVEL(-5)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(DebugLevel < InfoLevel && InfoLevel < WarningLevel && WarningLevel < ErrorLevel) {
		t.Error("named levels are not in ascending order")
	}

	// Unnamed levels sort by numeric value between and beyond the named ones.
	if !(InfoLevel < Level(25) && Level(25) < WarningLevel) {
		t.Error("Level(25) should sort between INFO and WARNING")
	}
	if !(ErrorLevel < Level(200)) {
		t.Error("Level(200) should sort above ERROR")
	}
}
