// Package eligibility implements the K-1 eligibility rule evaluator: pure
// functions over answer snapshots that decide whether the sponsor/beneficiary
// pair can proceed, and classify the failure when they cannot.
//
// Disqualifications are values, not errors. The screen layer consumes them to
// gate navigation and render guidance; nothing here panics or returns error
// for a business-rule mismatch.
package eligibility

// Verdict classifies a relationship-rule evaluation.
//
// Allowed=true with no flags means the rule passes or is undetermined (no
// jurisdiction chosen yet). RequiresStop marks a universal, state-independent
// prohibition; no choice of jurisdiction can cure it. Allowed=false with
// RequiresStop=false marks a state-specific prohibition; picking a different
// jurisdiction may cure it, and StateName names the offending jurisdiction.
// ManualReview marks fact patterns the rules cannot classify; the applicant
// is directed to support rather than to a different answer.
type Verdict struct {
	Allowed      bool   `json:"allowed"`
	RequiresStop bool   `json:"requires_stop,omitempty"`
	ManualReview bool   `json:"manual_review,omitempty"`
	StateName    string `json:"state_name,omitempty"`
}

func allowed() Verdict {
	return Verdict{Allowed: true}
}

func universalBar() Verdict {
	return Verdict{Allowed: false, RequiresStop: true}
}

func stateBar(stateName string) Verdict {
	return Verdict{Allowed: false, StateName: stateName}
}

func manualReview() Verdict {
	return Verdict{Allowed: false, ManualReview: true}
}
