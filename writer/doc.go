// Package writer implements the terminal renderer: the handler that
// turns log and progress events into visible output on one destination
// stream.
//
// Open installs the renderer on an effects.Stack and Close removes it;
// the pair brackets a rendering scope. Within a scope the renderer owns
// its destination exclusively. Whether the destination is an
// interactive terminal is decided once at Open: terminals get an
// in-place progress-bar region maintained with cursor-control
// sequences below the scrolling log output; everything else gets plain
// log lines with all ANSI escapes stripped and no progress visuals at
// all, so piped or redirected output is never polluted.
//
// Nested progress operations stack: the innermost bar renders lowest,
// a finishing bar is painted one last time at its final state, persists
// as a scrolled line, and is popped without disturbing the bars below
// it. In async mode repaints happen on a background tick instead of
// the emitting goroutine; finish events still paint synchronously, so
// the final state of every bar reaches the stream no matter how the
// ticks fall.
//
// Several writers may be open at once on different destinations. Each
// renders independently and forwards every event onward, so a console
// writer and a file writer both observe the full event flow.
package writer
