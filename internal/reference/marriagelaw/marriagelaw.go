// Package marriagelaw holds the per-jurisdiction marriage-law reference table
// used by eligibility checks: minimum marriage age and relationship
// restrictions. The data is immutable and loaded once at process start.
package marriagelaw

// Jurisdiction describes the marriage-law facts for one U.S. state or territory.
type Jurisdiction struct {
	Code                string
	Name                string
	MinimumAge          int
	FirstCousinsAllowed bool
}

// Lookup returns the jurisdiction for a two-letter code.
func Lookup(code string) (Jurisdiction, bool) {
	j, ok := table[code]
	return j, ok
}

// Codes returns all known jurisdiction codes. Order is unspecified.
func Codes() []string {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	return codes
}

// AdoptedSiblingsAllowed reports whether the jurisdiction permits marriage
// between siblings related only through adoption.
func AdoptedSiblingsAllowed(code string) bool {
	return adoptedSiblingStates[code]
}

// StepSiblingsAllowed reports whether the jurisdiction permits marriage
// between step-siblings (related only through a parent's remarriage).
func StepSiblingsAllowed(code string) bool {
	return stepSiblingStates[code]
}
