package domain

import (
	"fmt"
	"strings"
	"time"
)

var durationUnits = []struct {
	name string
	size time.Duration
}{
	{"day", 24 * time.Hour},
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

// FormatDuration renders d as "1 hour, 2 minutes, 5 seconds". Fractions of a second round up,
// so a pending cooldown never reads as "0 seconds".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0 seconds"
	}

	d = (d + time.Second - 1).Truncate(time.Second)

	parts := make([]string, 0, len(durationUnits))
	for _, unit := range durationUnits {
		n := d / unit.size
		if n == 0 {
			continue
		}
		d -= n * unit.size

		label := unit.name
		if n > 1 {
			label += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, label))
	}

	return strings.Join(parts, ", ")
}
