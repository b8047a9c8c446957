package coverage

import (
	"fmt"
	"time"
)

// FormatDuration renders a day count the way the history screens display
// gaps: days up to a week, weeks+days up to a month, months up to a year,
// then years+months.
func FormatDuration(days int) string {
	switch {
	case days < 7:
		return plural(days, "day")
	case days < 30:
		weeks := days / 7
		rem := days % 7
		if rem == 0 {
			return plural(weeks, "week")
		}
		return plural(weeks, "week") + ", " + plural(rem, "day")
	case days < 365:
		months := days / 30
		return plural(months, "month")
	default:
		years := days / 365
		months := (days % 365) / 30
		if months == 0 {
			return plural(years, "year")
		}
		return plural(years, "year") + ", " + plural(months, "month")
	}
}

// describeGap names the entries bounding the gap, falling back to a plain
// date range when either side has no bounding entry.
func describeGap(days int, start, end time.Time, beforeLabel, afterLabel string) string {
	duration := FormatDuration(days)
	if beforeLabel != "" && afterLabel != "" {
		return fmt.Sprintf("%s between %s and %s", duration, beforeLabel, afterLabel)
	}
	return fmt.Sprintf("%s from %s to %s", duration,
		start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
