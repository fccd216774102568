package progress

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ludvb/effects-logging/core"
	"github.com/ludvb/effects-logging/effects"
)

// collect installs a progress recorder on the stack and returns the
// recorded slice.
func collect(s *effects.Stack) *[]core.ProgressEvent {
	var events []core.ProgressEvent
	s.Push(effects.ProgressFunc(func(ev core.ProgressEvent) (core.Event, effects.Decision, error) {
		events = append(events, ev)
		return nil, effects.Handled, nil
	}))
	return &events
}

func phases(events []core.ProgressEvent) []core.Phase {
	out := make([]core.Phase, len(events))
	for i, ev := range events {
		out[i] = ev.Phase
	}
	return out
}

func TestTrack_EventLifecycle(t *testing.T) {
	s := effects.New()
	events := collect(s)

	var got []int
	for v := range N(s, 3, Config[int]{Description: "work"}) {
		got = append(got, v)
	}

	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("yielded %v, want [0 1 2]", got)
	}

	want := []core.Phase{
		core.PhaseStart,
		core.PhaseAdvance, core.PhaseAdvance, core.PhaseAdvance,
		core.PhaseFinish,
	}
	ph := phases(*events)
	if len(ph) != len(want) {
		t.Fatalf("phases = %v, want %v", ph, want)
	}
	for i := range want {
		if ph[i] != want[i] {
			t.Fatalf("phases = %v, want %v", ph, want)
		}
	}

	first := (*events)[0]
	if first.Total != 3 || first.Current != 0 || first.Description != "work" {
		t.Errorf("START = %+v", first)
	}
	last := (*events)[len(*events)-1]
	if last.Current != 3 {
		t.Errorf("FINISH current = %d, want 3", last.Current)
	}

	// All events of one operation share the sequence id, and current
	// never decreases.
	cur := -1
	for _, ev := range *events {
		if ev.Seq != first.Seq {
			t.Fatalf("sequence id changed mid-operation")
		}
		if ev.Current < cur {
			t.Fatalf("current decreased: %v", *events)
		}
		cur = ev.Current
	}
}

func TestTrack_AdvanceAfterBody(t *testing.T) {
	s := effects.New()
	events := collect(s)

	i := 0
	for range N(s, 2, Config[int]{}) {
		// The current element is dispatched but its body has not
		// completed, so only the previous elements may have advanced.
		advances := 0
		for _, ev := range *events {
			if ev.Phase == core.PhaseAdvance {
				advances++
			}
		}
		if advances != i {
			t.Fatalf("element %d: %d advances emitted before body completed", i, advances)
		}
		i++
	}

	// After the loop, both advances are in.
	advances := 0
	for _, ev := range *events {
		if ev.Phase == core.PhaseAdvance {
			advances++
		}
	}
	if advances != 2 {
		t.Errorf("advances = %d, want 2", advances)
	}
}

func TestTrack_EarlyBreakStillFinishes(t *testing.T) {
	s := effects.New()
	events := collect(s)

	for v := range N(s, 10, Config[int]{}) {
		if v == 2 {
			break
		}
	}

	ph := phases(*events)
	if ph[len(ph)-1] != core.PhaseFinish {
		t.Fatalf("last phase = %v, want FINISH", ph[len(ph)-1])
	}
	starts, finishes := 0, 0
	for _, p := range ph {
		switch p {
		case core.PhaseStart:
			starts++
		case core.PhaseFinish:
			finishes++
		}
	}
	if starts != 1 || finishes != 1 {
		t.Errorf("starts=%d finishes=%d, want 1/1", starts, finishes)
	}
}

func TestTrack_DescriptionChangeBeforeAdvance(t *testing.T) {
	s := effects.New()
	events := collect(s)

	items := []string{"alpha", "beta"}
	for range Slice(s, items, Config[string]{
		DescriptionFunc: func(s string) string { return s },
	}) {
	}

	ph := phases(*events)
	// START, DESC(alpha), ADV, DESC(beta), ADV, FINISH
	want := []core.Phase{
		core.PhaseStart,
		core.PhaseDescription, core.PhaseAdvance,
		core.PhaseDescription, core.PhaseAdvance,
		core.PhaseFinish,
	}
	if len(ph) != len(want) {
		t.Fatalf("phases = %v, want %v", ph, want)
	}
	for i := range want {
		if ph[i] != want[i] {
			t.Fatalf("phases = %v, want %v", ph, want)
		}
	}
	if (*events)[1].Description != "alpha" || (*events)[3].Description != "beta" {
		t.Errorf("descriptions = %q, %q", (*events)[1].Description, (*events)[3].Description)
	}
}

func TestTrack_NoHandlerStillYields(t *testing.T) {
	s := effects.New() // empty stack: progress events go nowhere

	var got []int
	for v := range N(s, 4, Config[int]{}) {
		got = append(got, v)
	}
	if len(got) != 4 {
		t.Errorf("yielded %d elements, want 4", len(got))
	}
}

func TestTrack_NestedSequenceIDs(t *testing.T) {
	s := effects.New()
	events := collect(s)

	for range N(s, 2, Config[int]{Description: "outer"}) {
		for range N(s, 2, Config[int]{Description: "inner"}) {
		}
	}

	// Two inner operations plus the outer one: three distinct ids, and
	// each inner FINISH lands before the outer FINISH.
	ids := map[uuid.UUID]bool{}
	for _, ev := range *events {
		ids[ev.Seq] = true
	}
	if len(ids) != 3 {
		t.Errorf("distinct sequence ids = %d, want 3", len(ids))
	}

	outerSeq := (*events)[0].Seq
	sawOuterFinish := false
	innerFinishes := 0
	for _, ev := range *events {
		if ev.Phase != core.PhaseFinish {
			continue
		}
		if ev.Seq == outerSeq {
			sawOuterFinish = true
		} else {
			if sawOuterFinish {
				t.Fatal("inner FINISH after outer FINISH")
			}
			innerFinishes++
		}
	}
	if !sawOuterFinish || innerFinishes != 2 {
		t.Errorf("outerFinish=%v innerFinishes=%d", sawOuterFinish, innerFinishes)
	}
}

func TestTrack_SecondConsumptionPanics(t *testing.T) {
	s := effects.New()
	seq := N(s, 2, Config[int]{})
	for range seq {
	}

	defer func() {
		if recover() == nil {
			t.Error("second consumption did not panic")
		}
	}()
	for range seq {
	}
}

func TestTrack_RenderingErrorReported(t *testing.T) {
	s := effects.New()
	boom := errors.New("stream gone")
	s.Push(effects.ProgressFunc(func(ev core.ProgressEvent) (core.Event, effects.Decision, error) {
		return nil, effects.Pass, boom
	}))

	var got []error
	for range N(s, 2, Config[int]{OnError: func(err error) { got = append(got, err) }}) {
	}
	if len(got) == 0 || !errors.Is(got[0], boom) {
		t.Errorf("OnError calls = %v, want wrapped %v", got, boom)
	}
}

func TestTrack_RenderingErrorPanicsWithoutCallback(t *testing.T) {
	s := effects.New()
	s.Push(effects.ProgressFunc(func(ev core.ProgressEvent) (core.Event, effects.Decision, error) {
		return nil, effects.Pass, errors.New("stream gone")
	}))

	defer func() {
		if recover() == nil {
			t.Error("rendering error did not panic without OnError")
		}
	}()
	for range N(s, 2, Config[int]{}) {
	}
}
