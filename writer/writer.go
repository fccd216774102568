package writer

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/term"

	"github.com/ludvb/effects-logging/core"
	"github.com/ludvb/effects-logging/effects"
	"github.com/ludvb/effects-logging/formatter"
)

// Options holds configuration for a Writer
type Options struct {
	// Async moves progress redraws off the emitting goroutine: advances
	// only record state, and a background task repaints at Interval,
	// coalescing bursts into one redraw per tick. Finish events and log
	// lines still paint synchronously so final state is never lost.
	Async bool
	// Interval is the minimum delay between coalesced redraws
	// (default 100ms). A negative interval disables coalescing and
	// repaints on every event; ignored in async mode.
	Interval time.Duration
	// ForceTTY treats the destination as an interactive terminal even
	// when it is not an *os.File, e.g. for terminal-backed buffers in
	// tests. Without it, TTY detection runs once against the
	// destination's file descriptor.
	ForceTTY bool
	// Format configures the built-in text formatter
	Format formatter.Config
	// Formatter overrides the built-in text formatter entirely
	Formatter formatter.LogFormatter
}

// Writer renders log and progress events to a single destination stream.
// It is installed on a Stack by Open and removed by Close; while
// installed it forwards every event onward after rendering, so several
// writers on different destinations each see the full event flow.
//
// The destination is owned exclusively by its Writer for the scope's
// lifetime. Opening two async Writers on the same stream is not
// detected and corrupts output; callers must not do it.
type Writer struct {
	out      io.Writer
	fmt      formatter.LogFormatter
	isTTY    bool
	async    bool
	interval time.Duration
	remove   func()

	mu       sync.Mutex
	buf      bytes.Buffer
	bars     []*barState
	drawn    int // bar lines currently on screen
	lastDraw time.Time
	dirty    bool
	bgErr    error // first background write error, surfaced at Close
	closed   bool

	stop chan struct{}
	wg   sync.WaitGroup
}

// barState tracks one active progress operation. Entries live in
// Writer.bars in nesting order: a bar started while another is active
// sits above it and is rendered below it on screen.
type barState struct {
	seq     uuid.UUID
	current int
	total   int
	desc    string
	started time.Time
}

// applyDefaults fills in zero-value options.
func applyDefaults(opts *Options) {
	if opts.Interval == 0 {
		opts.Interval = 100 * time.Millisecond
	}
	if opts.Async && opts.Interval < 0 {
		opts.Interval = 100 * time.Millisecond
	}
	if opts.Formatter == nil {
		opts.Formatter = formatter.NewText(opts.Format)
	}
}

// Open installs a terminal renderer for out on the stack and returns its
// scoped handle. Whether out is an interactive terminal is decided here,
// once; a destination that is not a terminal at open time never receives
// progress visuals or cursor-control sequences, even if the underlying
// device changes later. The caller must Close the returned Writer on
// every exit path, typically via defer.
func Open(stack *effects.Stack, out io.Writer, opts Options) (*Writer, error) {
	if out == nil {
		out = os.Stdout
	}
	applyDefaults(&opts)

	isTTY := opts.ForceTTY
	if f, ok := out.(*os.File); ok && !isTTY {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	w := &Writer{
		out:      out,
		fmt:      opts.Formatter,
		isTTY:    isTTY,
		async:    opts.Async,
		interval: opts.Interval,
	}

	if w.async && w.isTTY {
		w.stop = make(chan struct{})
		w.wg.Add(1)
		go w.updater()
	}

	w.remove = stack.Push(w)
	return w, nil
}

// Handle implements effects.Handler. Both event kinds are rendered and
// then forwarded, never swallowed: an outer writer on another
// destination must see them too.
func (w *Writer) Handle(ev core.Event) (core.Event, effects.Decision, error) {
	switch e := ev.(type) {
	case core.LogEvent:
		if err := w.writeLog(e); err != nil {
			return nil, effects.Pass, err
		}
		return nil, effects.Handled, nil
	case core.ProgressEvent:
		if err := w.handleProgress(e); err != nil {
			return nil, effects.Pass, err
		}
		return nil, effects.Handled, nil
	default:
		return nil, effects.Pass, nil
	}
}

// Close removes the writer from its stack, stops and joins the
// background repaint task, performs a last coalesced redraw if one is
// pending, and flushes. It is idempotent and safe to defer alongside
// error returns; cleanup runs unconditionally so a failing scope body
// cannot leave the handler installed or the cursor inside the bar
// region.
func (w *Writer) Close() error {
	w.remove()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	if w.stop != nil {
		close(w.stop)
		w.wg.Wait()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.isTTY && w.dirty && len(w.bars) > 0 {
		err = multierr.Append(err, w.redrawLocked())
	}
	err = multierr.Append(err, w.bgErr)

	// Bars still active here mean the producing scope leaked them; park
	// the cursor on a fresh line so subsequent output cannot land inside
	// the stale bar region.
	if w.drawn > 0 {
		_, werr := io.WriteString(w.out, "\n")
		err = multierr.Append(err, werr)
		w.drawn = 0
	}
	return multierr.Append(err, w.flushLocked())
}
