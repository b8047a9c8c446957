package coverage

// Validator checks history entries for required sub-fields. Completeness and
// date-coverage are evaluated independently: an entry missing its organization
// still counts toward coverage if its dates are valid, but the screen is not
// complete until both checks pass.
type Validator struct {
	// RequiredFields lists the field keys every entry must carry, in
	// presentation order. The address and employment screens configure
	// different lists over the same validator.
	RequiredFields []string
}

// MissingFields describes one incomplete entry.
type MissingFields struct {
	EntryIndex int      `json:"entry_index"`
	Label      string   `json:"label,omitempty"`
	Fields     []string `json:"fields"`
}

// Validate returns one MissingFields record per incomplete entry, in input
// order. An empty result means every entry is complete.
func (v Validator) Validate(entries []Entry) []MissingFields {
	var incomplete []MissingFields
	for i, e := range entries {
		var missing []string
		for _, key := range v.RequiredFields {
			if e.Fields[key] == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			incomplete = append(incomplete, MissingFields{
				EntryIndex: i,
				Label:      e.Label,
				Fields:     missing,
			})
		}
	}
	return incomplete
}
