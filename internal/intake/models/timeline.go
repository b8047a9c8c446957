package models

import (
	"time"

	"promissa/internal/coverage"
	dErrors "promissa/pkg/domain-errors"
)

// TimelineEntry is one row of an address or employment history timeline.
// Details carries the entry's descriptive fields (street, employer, and so
// on) keyed the same way the completeness validator expects them.
type TimelineEntry struct {
	Label   string            `json:"label"`
	Start   string            `json:"start"`
	End     string            `json:"end,omitempty"`
	Current bool              `json:"current"`
	Details map[string]string `json:"details,omitempty"`
}

// Validate checks the entry's date shape. A current entry must not carry an
// end date; a past entry must, and the range must not be inverted.
func (e TimelineEntry) Validate() error {
	start, err := time.Parse(dateLayout, e.Start)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidAnswer, "start date must be YYYY-MM-DD")
	}
	if e.Current {
		if e.End != "" {
			return dErrors.New(dErrors.CodeInvalidAnswer, "a current entry cannot have an end date")
		}
		return nil
	}
	if e.End == "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "end date required unless the entry is current")
	}
	end, err := time.Parse(dateLayout, e.End)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidAnswer, "end date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return dErrors.New(dErrors.CodeInvalidAnswer, "end date precedes start date")
	}
	return nil
}

// CoverageEntry converts the row for the gap calculator. Invalid dates come
// through as zero times; Validate is expected to have run first.
func (e TimelineEntry) CoverageEntry() coverage.Entry {
	start, _ := time.Parse(dateLayout, e.Start)
	var end time.Time
	if e.End != "" {
		end, _ = time.Parse(dateLayout, e.End)
	}
	return coverage.Entry{
		Label:   e.Label,
		Start:   start,
		End:     end,
		Current: e.Current,
		Fields:  e.Details,
	}
}

// TimelineFromAnswer decodes the raw answer value stored for a timeline
// field. JSON decoding leaves []any of map[string]any; anything else is an
// invalid answer.
func TimelineFromAnswer(v any) ([]TimelineEntry, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidAnswer, "timeline answer must be a list of entries")
	}
	entries := make([]TimelineEntry, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, dErrors.New(dErrors.CodeInvalidAnswer, "timeline entry must be an object")
		}
		e := TimelineEntry{
			Label: asString(m["label"]),
			Start: asString(m["start"]),
			End:   asString(m["end"]),
		}
		if b, ok := m["current"].(bool); ok {
			e.Current = b
		}
		if details, ok := m["details"].(map[string]any); ok {
			e.Details = make(map[string]string, len(details))
			for k, dv := range details {
				e.Details[k] = asString(dv)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CoverageEntries validates every row and converts the lot.
func CoverageEntries(entries []TimelineEntry) ([]coverage.Entry, error) {
	out := make([]coverage.Entry, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		out = append(out, e.CoverageEntry())
	}
	return out, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
