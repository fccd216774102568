package progress

import (
	"iter"
	"sync/atomic"

	"github.com/ludvb/effects-logging/core"
	"github.com/ludvb/effects-logging/effects"
)

// Config controls one tracked iteration.
type Config[T any] struct {
	// Total overrides the sequence length when known. <= 0 means
	// unknown; Slice and N fill it in from the input.
	Total int
	// Description is the initial bar description
	Description string
	// DescriptionFunc derives a per-element description. A change is
	// emitted immediately before the element's advance event.
	DescriptionFunc func(T) string
	// OnError receives rendering errors surfaced by the handler stack.
	// When nil, a rendering error panics out of the consuming loop;
	// progress that silently stops updating would mask a broken stream.
	OnError func(error)
}

// Track wraps seq so that consuming it reports progress through the
// stack. A START event precedes the first element, an ADVANCE follows
// each completed loop-body iteration (progress counts work done, not
// work dispatched), and a FINISH is guaranteed on every exit path,
// including an early break out of the loop. Whether any renderer is
// installed has no effect on the elements yielded.
//
// The returned sequence is single-pass; consuming it a second time
// panics.
func Track[T any](stack *effects.Stack, seq iter.Seq[T], cfg Config[T]) iter.Seq[T] {
	var consumed atomic.Bool
	return func(yield func(T) bool) {
		if consumed.Swap(true) {
			panic("progress: tracked sequence consumed twice")
		}

		sid := core.NewSequenceID()
		current := 0
		desc := cfg.Description

		send := func(phase core.Phase, d string) {
			ev, err := core.NewProgress(sid, phase, current, cfg.Total, d)
			if err == nil {
				err = stack.Send(ev)
			}
			if err != nil {
				if cfg.OnError != nil {
					cfg.OnError(err)
					return
				}
				panic(err)
			}
		}

		send(core.PhaseStart, desc)
		defer func() { send(core.PhaseFinish, desc) }()

		for item := range seq {
			next := desc
			if cfg.DescriptionFunc != nil {
				next = cfg.DescriptionFunc(item)
			}
			if !yield(item) {
				return
			}
			current++
			if next != desc {
				desc = next
				send(core.PhaseDescription, desc)
			}
			send(core.PhaseAdvance, desc)
		}
	}
}

// Slice tracks iteration over items with the total known up front.
func Slice[T any](stack *effects.Stack, items []T, cfg Config[T]) iter.Seq[T] {
	if cfg.Total <= 0 {
		cfg.Total = len(items)
	}
	return Track(stack, func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}, cfg)
}

// N tracks n iterations yielding 0 through n-1, like tracking a counted
// loop.
func N(stack *effects.Stack, n int, cfg Config[int]) iter.Seq[int] {
	if cfg.Total <= 0 {
		cfg.Total = n
	}
	return Track(stack, func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}, cfg)
}
