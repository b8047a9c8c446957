// Package coverage implements the trailing-window coverage gap calculator
// shared by the address-history and employment-history screens: given
// time-bounded entries, it merges their date ranges over the trailing five
// years and reports the uncovered gaps with human-readable durations.
package coverage

import (
	"sort"
	"time"
)

// WindowYears is the trailing period that must be fully accounted for.
const WindowYears = 5

// Entry is one time-bounded history record. Current entries are open-ended
// and treated as running through today; End is ignored for them. The caller
// tags currency explicitly per entry rather than by list position, so
// reordering entries cannot silently change the result.
type Entry struct {
	Label   string
	Start   time.Time
	End     time.Time
	Current bool
	Fields  map[string]string
}

// Interval is a half-closed-on-neither-side calendar-day range [Start, End].
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Gap is one uncovered sub-interval of the window. Start is the first
// uncovered day and End the first covered day after the gap, so Days is the
// exact calendar-day count between the bounds.
type Gap struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Days        int       `json:"days"`
	Description string    `json:"description"`
}

// Report is the derived coverage state for one history list. It is
// recomputed from the entries on every evaluation and never persisted.
//
// Empty distinguishes "0% because nothing was entered" from "0% because one
// giant gap": with no usable entries no gaps are enumerated at all.
type Report struct {
	WindowStart     time.Time  `json:"window_start"`
	WindowEnd       time.Time  `json:"window_end"`
	Covered         []Interval `json:"covered"`
	Gaps            []Gap      `json:"gaps"`
	CoveragePercent int        `json:"coverage_percent"`
	Empty           bool       `json:"empty"`
}

// FullyCovered reports whether the window has no gaps.
func (r Report) FullyCovered() bool {
	return !r.Empty && len(r.Gaps) == 0
}

// span is a merged interval that remembers which entries bound it, so gap
// descriptions can name the records on either side.
type span struct {
	start, end           time.Time
	startLabel, endLabel string
}

// Calculate computes the coverage report for the trailing five-year window
// ending today. Entries without a usable start date (or end date, unless
// current) are excluded defensively rather than failing.
func Calculate(entries []Entry, today time.Time) Report {
	windowEnd := day(today)
	windowStart := windowEnd.AddDate(-WindowYears, 0, 0)

	spans := clampUsable(entries, windowStart, windowEnd)
	if len(spans) == 0 {
		return Report{WindowStart: windowStart, WindowEnd: windowEnd, Empty: true}
	}

	merged := merge(spans)

	report := Report{WindowStart: windowStart, WindowEnd: windowEnd}
	for _, m := range merged {
		report.Covered = append(report.Covered, Interval{Start: m.start, End: m.end})
	}

	// Prefix gap: window start up to the first covered day.
	if merged[0].start.After(windowStart) {
		report.Gaps = append(report.Gaps, newGap(windowStart, merged[0].start, "", merged[0].startLabel))
	}

	// Gaps between adjacent merged intervals. An interval ending the day
	// before the next begins leaves zero uncovered days and is not a gap.
	for i := 0; i < len(merged)-1; i++ {
		firstUncovered := merged[i].end.AddDate(0, 0, 1)
		next := merged[i+1].start
		if next.After(firstUncovered) {
			report.Gaps = append(report.Gaps,
				newGap(firstUncovered, next, merged[i].endLabel, merged[i+1].startLabel))
		}
	}

	report.CoveragePercent = percent(windowStart, windowEnd, report.Gaps)
	return report
}

func clampUsable(entries []Entry, windowStart, windowEnd time.Time) []span {
	spans := make([]span, 0, len(entries))
	for _, e := range entries {
		if e.Start.IsZero() {
			continue
		}
		end := day(e.End)
		if e.Current {
			end = windowEnd
		}
		if end.IsZero() {
			continue
		}
		start := day(e.Start)
		if end.Before(start) {
			continue
		}
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if end.Before(windowStart) || start.After(windowEnd) {
			continue
		}
		spans = append(spans, span{start: start, end: end, startLabel: e.Label, endLabel: e.Label})
	}
	return spans
}

// merge collapses sorted spans into a minimal disjoint covering set.
// Touching intervals (next starts on or before the day after the previous
// ends) merge, since calendar-day coverage has no room between them.
func merge(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })

	merged := []span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if !s.start.After(last.end.AddDate(0, 0, 1)) {
			if s.end.After(last.end) {
				last.end = s.end
				last.endLabel = s.endLabel
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

func newGap(start, end time.Time, beforeLabel, afterLabel string) Gap {
	days := daysBetween(start, end)
	return Gap{
		Start:       start,
		End:         end,
		Days:        days,
		Description: describeGap(days, start, end, beforeLabel, afterLabel),
	}
}

// percent computes window coverage. Floored whenever at least one gap exists
// so the UI never shows 100% while any day is uncovered; rounded normally at
// zero gaps.
func percent(windowStart, windowEnd time.Time, gaps []Gap) int {
	windowDays := daysBetween(windowStart, windowEnd)
	if windowDays <= 0 {
		return 0
	}
	gapDays := 0
	for _, g := range gaps {
		gapDays += g.Days
	}
	ratio := float64(windowDays-gapDays) / float64(windowDays) * 100
	if len(gaps) > 0 {
		return int(ratio)
	}
	return int(ratio + 0.5)
}

// day truncates a timestamp to midnight UTC; coverage is calendar-day based.
func day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
