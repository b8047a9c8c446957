package models

import (
	"time"
)

// dateLayout is the wire format for date answers.
const dateLayout = "2006-01-02"

// Answers holds the raw questionnaire responses for a session, keyed by
// field ID. Values are whatever JSON decoding produced: string, bool,
// float64, or a nested structure for address and timeline fields.
type Answers map[string]any

// Lookup satisfies the snapshot contract used by screen conditions.
func (a Answers) Lookup(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// String returns the answer as a string, or "" when absent or a different
// type.
func (a Answers) String(key string) string {
	if s, ok := a[key].(string); ok {
		return s
	}
	return ""
}

// Bool returns the answer as a bool. The second return reports whether the
// field was answered with a boolean at all, which screens use to tell "No"
// apart from "not yet answered".
func (a Answers) Bool(key string) (bool, bool) {
	b, ok := a[key].(bool)
	return b, ok
}

// Date parses a date answer. A zero time is returned for absent, blank, or
// malformed values.
func (a Answers) Date(key string) time.Time {
	s, ok := a[key].(string)
	if !ok || s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clone returns a shallow copy. Nested slices and maps are shared; callers
// mutate answers only through Set/Delete on the copy's top level.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// dependentFields maps a branching boolean field to the detail fields that
// only make sense while it is true. When the controlling answer flips to
// false the stale details are dropped, so a later flip back to true starts
// the detail screens blank instead of silently resubmitting old data.
var dependentFields = map[string][]string{
	"bloodRelated":             {"bloodRelationship"},
	"adoptionRelated":          {"adoptionRelationship"},
	"marriageRelated":          {"marriageRelationship"},
	"sponsorPreviouslyMarried": {"sponsorPriorMarriageEndDate"},
	"metInPerson":              {"lastMeetingDate"},
	"metThroughIMB":            {"imbDisclosureProvided"},
}

// Set records an answer and clears any dependent details invalidated by the
// change.
func (a Answers) Set(key string, value any) {
	a[key] = value
	if b, ok := value.(bool); ok && !b {
		for _, dep := range dependentFields[key] {
			delete(a, dep)
		}
	}
}

// Delete removes an answer and its dependents.
func (a Answers) Delete(key string) {
	delete(a, key)
	for _, dep := range dependentFields[key] {
		delete(a, dep)
	}
}
