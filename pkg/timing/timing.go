// Package timing converts raw duration measurements into records that
// keep the exact nanosecond count alongside a human-readable rendering.
package timing

import (
	"fmt"
	"time"
)

// Elapsed is a formatted duration measurement. Raw preserves the
// nanosecond count verbatim; Formatted is for display only.
type Elapsed struct {
	Raw       int64  `json:"raw"`
	Formatted string `json:"formatted"`
}

// Format converts a duration into an Elapsed record.
func Format(d time.Duration) Elapsed {
	return Elapsed{Raw: d.Nanoseconds(), Formatted: formatNanoseconds(d.Nanoseconds())}
}

// Since measures the time elapsed from start.
func Since(start time.Time) Elapsed {
	return Format(time.Since(start))
}

// formatNanoseconds picks the largest unit that keeps the value an
// integer-truncated count: ns below 1µs, µs below 1ms, ms below 1s.
func formatNanoseconds(n int64) string {
	switch {
	case n < 1_000:
		return fmt.Sprintf("%dns", n)
	case n < 1_000_000:
		return fmt.Sprintf("%dμs", n/1_000)
	case n < 1_000_000_000:
		return fmt.Sprintf("%dms", n/1_000_000)
	default:
		return fmt.Sprintf("%ds", n/1_000_000_000)
	}
}
