// Package sequence owns the declarative screen catalog and the sequencer
// that flattens it into an ordered screen list per role and answer state.
//
// Visibility is expressed as data-only conditions evaluated by a small
// interpreter, never as embedded closures, so the catalog stays serializable
// and the condition logic stays testable away from rendering.
package sequence

import (
	"fmt"
	"strconv"
)

// Snapshot is a read-only view over the current answers. The intake answer
// set implements it; tests use plain maps.
type Snapshot interface {
	Lookup(key string) (any, bool)
}

// Op enumerates the condition operators the catalog may use.
type Op string

const (
	OpEquals    Op = "equals"
	OpNotEquals Op = "not-equals"
	OpNotEmpty  Op = "not-empty"
	OpAnyOf     Op = "any-of"
	OpIsTrue    Op = "is-true"
	OpIsFalse   Op = "is-false"
)

// Condition is one data-only visibility predicate.
type Condition struct {
	Field  string   `yaml:"field" json:"field"`
	Op     Op       `yaml:"op" json:"op"`
	Value  string   `yaml:"value,omitempty" json:"value,omitempty"`
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// Evaluate interprets the condition against a snapshot. A zero condition
// (no field) is always true, so optional show_when blocks need no special
// casing at call sites. Missing answers make every operator except
// not-equals and is-false evaluate false.
func (c Condition) Evaluate(snap Snapshot) bool {
	if c.Field == "" {
		return true
	}

	raw, present := snap.Lookup(c.Field)
	value := stringify(raw)

	switch c.Op {
	case OpEquals:
		return present && value == c.Value
	case OpNotEquals:
		return !present || value != c.Value
	case OpNotEmpty:
		return present && value != ""
	case OpAnyOf:
		if !present {
			return false
		}
		for _, v := range c.Values {
			if value == v {
				return true
			}
		}
		return false
	case OpIsTrue:
		return present && value == "true"
	case OpIsFalse:
		return !present || value == "false"
	default:
		return false
	}
}

// stringify normalizes answer values for comparison. Answers arrive as JSON
// scalars; anything structured compares by its formatted form, which no
// catalog condition relies on.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
