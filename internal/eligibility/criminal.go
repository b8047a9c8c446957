package eligibility

// Disclosure is a tri-state yes/no answer. Unanswered questions are neither
// yes nor no; gating treats them as not-yet-blocking but not complete either.
type Disclosure int

const (
	DisclosureUnanswered Disclosure = iota
	DisclosureNo
	DisclosureYes
)

// CriminalHistory holds the five independent disclosure questions from the
// sponsor criminal-history screen, in presentation order.
type CriminalHistory struct {
	ProtectionOrders    Disclosure `json:"protection_orders"`
	ViolentCrimes       Disclosure `json:"violent_crimes"`
	DomesticViolence    Disclosure `json:"domestic_violence"`
	DrugAlcoholOffenses Disclosure `json:"drug_alcohol_offenses"`
	AnyOtherConvictions Disclosure `json:"any_other_convictions"`
}

func (h CriminalHistory) ordered() []Disclosure {
	return []Disclosure{
		h.ProtectionOrders,
		h.ViolentCrimes,
		h.DomesticViolence,
		h.DrugAlcoholOffenses,
		h.AnyOtherConvictions,
	}
}

// CriminalGate is the derived gating state for the criminal-history screen.
//
// Blocked is true when any question is answered Yes: the petition needs
// individual review before it can proceed, regardless of the other answers.
// DisabledFrom is the index of the first question after the earliest Yes;
// the screen renders later questions disabled (state preserved) once an
// earlier Yes is given. Complete is true when every question has an answer.
type CriminalGate struct {
	Blocked      bool `json:"blocked"`
	Complete     bool `json:"complete"`
	DisabledFrom int  `json:"disabled_from"`
}

// CheckCriminalHistory recomputes gating purely from the current answers.
// A Yes that was given on a later question while an earlier one was Yes still
// counts after the earlier answer flips back to No; answers are never cleared
// by gating.
func CheckCriminalHistory(h CriminalHistory) CriminalGate {
	gate := CriminalGate{Complete: true, DisabledFrom: -1}
	for i, d := range h.ordered() {
		switch d {
		case DisclosureYes:
			gate.Blocked = true
			if gate.DisabledFrom == -1 {
				gate.DisabledFrom = i + 1
			}
		case DisclosureUnanswered:
			gate.Complete = false
		}
	}
	return gate
}
