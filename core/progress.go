package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase identifies where in a progress operation's lifecycle an event sits.
type Phase int

const (
	// PhaseStart opens a progress operation. Exactly one per sequence id.
	PhaseStart Phase = iota
	// PhaseAdvance reports completed work.
	PhaseAdvance
	// PhaseDescription changes the description text.
	PhaseDescription
	// PhaseFinish closes a progress operation. Exactly one per sequence id.
	PhaseFinish
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseAdvance:
		return "ADVANCE"
	case PhaseDescription:
		return "DESCRIPTION_CHANGE"
	case PhaseFinish:
		return "FINISH"
	default:
		return "UNKNOWN"
	}
}

// ProgressEvent reports the state of one logical progress operation. All
// events of one operation share a sequence id; Current is monotonically
// non-decreasing within it.
type ProgressEvent struct {
	Seq         uuid.UUID
	Phase       Phase
	Current     int
	Total       int // <= 0 when the underlying sequence has no known size
	Description string
}

func (ProgressEvent) event() {}

// NewSequenceID allocates a fresh sequence id, unique among concurrently
// active progress operations.
func NewSequenceID() uuid.UUID {
	return uuid.New()
}

// NewProgress constructs a progress event. Current must be non-negative;
// a missing total is expressed as Total <= 0.
func NewProgress(seq uuid.UUID, phase Phase, current, total int, description string) (ProgressEvent, error) {
	if current < 0 {
		return ProgressEvent{}, fmt.Errorf("progress event: negative current %d", current)
	}
	return ProgressEvent{
		Seq:         seq,
		Phase:       phase,
		Current:     current,
		Total:       total,
		Description: description,
	}, nil
}
