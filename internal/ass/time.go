package ass

import (
	"fmt"
	"strings"
	"time"
)

// FormatTime renders a duration as an ASS timestamp (H:MM:SS.cc). Sub-unit
// precision is truncated, never rounded up, so a quantized time is always at
// or before the true time.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalCentis := int64(d / (10 * time.Millisecond))

	centis := totalCentis % 100
	totalSeconds := totalCentis / 100
	seconds := totalSeconds % 60
	minutes := (totalSeconds / 60) % 60
	hours := totalSeconds / 3600

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// EscapeText escapes dialogue text. Curly braces open override blocks in ASS
// and must not appear literally.
func EscapeText(text string) string {
	text = strings.ReplaceAll(text, "{", `\{`)
	return strings.ReplaceAll(text, "}", `\}`)
}
