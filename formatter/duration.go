package formatter

import (
	"fmt"
	"math"
	"strings"
)

// formatDuration renders a duration in seconds compactly, dropping
// leading units that are zero: "42s", " 3m 5s", " 1h 0m", "2d 3h 4m".
// Seconds are only shown below the hour mark.
func formatDuration(totalSeconds float64) string {
	if math.IsInf(totalSeconds, 1) {
		return "inf"
	}

	days := int(totalSeconds / 86400)
	remaining := math.Mod(totalSeconds, 86400)
	hours := int(remaining / 3600)
	remaining = math.Mod(remaining, 3600)
	minutes := int(remaining / 60)
	seconds := math.Mod(remaining, 60)

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%2dh", hours))
	}
	if days > 0 || hours > 0 || minutes > 0 {
		parts = append(parts, fmt.Sprintf("%2dm", minutes))
	}
	if days == 0 && hours == 0 {
		parts = append(parts, fmt.Sprintf("%2.0fs", seconds))
	}
	return strings.Join(parts, "")
}
