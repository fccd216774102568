package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// minFillWidth is the smallest rendered fill region. On narrow terminals
// the line is truncated to the terminal width instead of shrinking the
// fill below this.
const minFillWidth = 5

// Bar is a snapshot of one progress operation, taken by the renderer at
// draw time.
type Bar struct {
	Current     int
	Total       int // <= 0 when unknown
	Description string
	// Elapsed is the time since the operation started.
	Elapsed float64 // seconds
	// Done marks the final draw of a finished operation.
	Done bool
}

// FormatBar renders one bar line fitted to the given width.
//
// With a known total:
//
//	desc: 25%|██---------| 1/4 [ 2s< 6s, 0.50it/s]
//
// Without one, an indeterminate indicator with the consumed count:
//
//	desc: -----------  1 [ 2s, 0.50it/s]
//
// The fill region flexes with the width; Done fills the indeterminate
// indicator completely as a completion marker.
func FormatBar(b Bar, width int) string {
	prefix := ""
	if b.Description != "" {
		prefix = b.Description + ": "
	}

	var rateStr string
	if b.Elapsed > 0 && b.Current > 0 {
		rate := float64(b.Current) / b.Elapsed
		if rate >= 1 {
			rateStr = fmt.Sprintf(", %.2fit/s", rate)
		} else {
			rateStr = fmt.Sprintf(", %.2fs/it", 1/rate)
		}
	} else {
		rateStr = ", 0.00it/s"
	}
	elapsedStr := formatDuration(b.Elapsed)

	var progressStr, suffix, fill string
	if b.Total > 0 {
		// Current can legitimately overshoot a stale total; stretch the
		// total rather than render >100%.
		total := b.Total
		if b.Current > total {
			total = b.Current
		}
		pct := 100 * b.Current / total
		progressStr = fmt.Sprintf("%d%%|", pct)

		eta := "inf"
		if b.Current > 0 {
			eta = formatDuration(b.Elapsed / float64(b.Current) * float64(total-b.Current))
		}
		suffix = fmt.Sprintf("| %d/%d [%s<%s%s]", b.Current, total, elapsedStr, eta, rateStr)

		fillWidth := width - runewidth.StringWidth(prefix) - len(progressStr) - len(suffix)
		if fillWidth < minFillWidth {
			fillWidth = minFillWidth
		}
		filled := fillWidth * b.Current / total
		fill = strings.Repeat("█", filled) + strings.Repeat("-", fillWidth-filled)
	} else {
		suffix = fmt.Sprintf(" %d [%s%s]", b.Current, elapsedStr, rateStr)

		fillWidth := width - runewidth.StringWidth(prefix) - len(suffix)
		if fillWidth < minFillWidth {
			fillWidth = minFillWidth
		}
		if b.Done {
			fill = strings.Repeat("█", fillWidth)
		} else {
			fill = strings.Repeat("-", fillWidth)
		}
	}

	return runewidth.Truncate(prefix+progressStr+fill+suffix, width, "")
}
