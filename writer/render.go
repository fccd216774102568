package writer

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/ludvb/effects-logging/core"
	"github.com/ludvb/effects-logging/formatter"
)

// defaultWidth is assumed when the destination has no queryable size.
const defaultWidth = 80

type flusher interface {
	Flush() error
}

// writeLog renders a log line. On a terminal with active bars the bar
// region is cleared, the line written, and the region repainted, all in
// a single Write so log output and bar output never interleave.
func (w *Writer) writeLog(ev core.LogEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line := w.fmt.Format(ev)
	if !w.isTTY {
		line = formatter.StripANSI(line)
	}

	w.buf.Reset()
	w.clearRegion(&w.buf)
	w.buf.WriteString(line)
	w.buf.WriteByte('\n')
	w.drawBars(&w.buf)
	return w.writeOutLocked()
}

// handleProgress updates bar state and repaints as the phase demands.
// Progress visuals are suppressed for the writer's whole lifetime when
// the destination is not a terminal.
func (w *Writer) handleProgress(ev core.ProgressEvent) error {
	if !w.isTTY {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch ev.Phase {
	case core.PhaseStart:
		if w.findBar(ev.Seq) != nil {
			return nil // duplicate START; first one wins
		}
		w.bars = append(w.bars, &barState{
			seq:     ev.Seq,
			current: ev.Current,
			total:   ev.Total,
			desc:    ev.Description,
			started: time.Now(),
		})
		return w.redrawLocked()

	case core.PhaseAdvance:
		b := w.findBar(ev.Seq)
		if b == nil {
			return nil // ADVANCE without START; nothing to update
		}
		if ev.Current > b.current {
			b.current = ev.Current
		}
		if ev.Total > 0 {
			b.total = ev.Total
		}
		return w.repaintThrottled()

	case core.PhaseDescription:
		b := w.findBar(ev.Seq)
		if b == nil {
			return nil
		}
		b.desc = ev.Description
		return w.repaintThrottled()

	case core.PhaseFinish:
		b := w.findBar(ev.Seq)
		if b == nil {
			return nil
		}
		if ev.Current > b.current {
			b.current = ev.Current
		}
		return w.finishBar(b)
	}
	return nil
}

// repaintThrottled coalesces repaints. Async mode marks state dirty and
// leaves the painting to the background task; sync mode paints inline,
// at most once per interval.
func (w *Writer) repaintThrottled() error {
	if w.async {
		w.dirty = true
		return nil
	}
	if w.interval > 0 && time.Since(w.lastDraw) < w.interval {
		w.dirty = true
		return nil
	}
	return w.redrawLocked()
}

// finishBar paints the final state of b, persists it as a scrolled-off
// line, and pops b from the stack. The repaint is always synchronous:
// the last state must hit the stream before the caller moves on,
// regardless of coalescing. Bars below b keep their position.
func (w *Writer) finishBar(b *barState) error {
	if b.total > 0 {
		b.current = b.total
	}

	w.buf.Reset()
	w.clearRegion(&w.buf)
	w.buf.WriteString(formatter.FormatBar(w.snapshot(b, true), w.width()))
	w.buf.WriteByte('\n')

	for i, cur := range w.bars {
		if cur == b {
			w.bars = append(w.bars[:i], w.bars[i+1:]...)
			break
		}
	}

	w.drawBars(&w.buf)
	return w.writeOutLocked()
}

// findBar returns the active bar for seq, or nil. Caller must hold w.mu.
func (w *Writer) findBar(seq uuid.UUID) *barState {
	for _, b := range w.bars {
		if b.seq == seq {
			return b
		}
	}
	return nil
}

// clearRegion moves the cursor to the top of the bar region and erases
// it. Caller must hold w.mu.
func (w *Writer) clearRegion(buf *bytes.Buffer) {
	if w.drawn == 0 {
		return
	}
	buf.WriteByte('\r')
	if w.drawn > 1 {
		fmt.Fprintf(buf, "\x1b[%dA", w.drawn-1)
	}
	buf.WriteString("\x1b[J")
	w.drawn = 0
}

// drawBars appends the bar region to buf, one line per active bar in
// nesting order, cursor resting at the end of the last line. Caller
// must hold w.mu.
func (w *Writer) drawBars(buf *bytes.Buffer) {
	w.dirty = false
	if !w.isTTY || len(w.bars) == 0 {
		return
	}
	width := w.width()
	lines := make([]string, len(w.bars))
	for i, b := range w.bars {
		lines[i] = formatter.FormatBar(w.snapshot(b, false), width)
	}
	buf.WriteString(strings.Join(lines, "\n"))
	w.drawn = len(w.bars)
	w.lastDraw = time.Now()
}

// snapshot converts live bar state into a formatter value under w.mu,
// so the formatter never observes a half-updated bar.
func (w *Writer) snapshot(b *barState, done bool) formatter.Bar {
	return formatter.Bar{
		Current:     b.current,
		Total:       b.total,
		Description: b.desc,
		Elapsed:     time.Since(b.started).Seconds(),
		Done:        done,
	}
}

// redrawLocked clears and repaints the bar region. Caller must hold w.mu.
func (w *Writer) redrawLocked() error {
	w.buf.Reset()
	w.clearRegion(&w.buf)
	w.drawBars(&w.buf)
	return w.writeOutLocked()
}

// writeOutLocked flushes w.buf to the destination in one Write call.
// Caller must hold w.mu.
func (w *Writer) writeOutLocked() error {
	if w.buf.Len() > 0 {
		if _, err := w.out.Write(w.buf.Bytes()); err != nil {
			return fmt.Errorf("write to destination: %w", err)
		}
	}
	return w.flushLocked()
}

// flushLocked flushes the destination when it is buffered. Caller must
// hold w.mu.
func (w *Writer) flushLocked() error {
	if f, ok := w.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// width reports the destination's current column count.
func (w *Writer) width() int {
	if f, ok := w.out.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultWidth
}
