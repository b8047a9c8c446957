package eligibility

import "promissa/internal/reference/marriagelaw"

// BloodRelationship categorizes how closely the couple is related by blood.
type BloodRelationship string

const (
	BloodNone                    BloodRelationship = ""
	BloodCloserThanFirstCousins  BloodRelationship = "closer-than-first-cousins"
	BloodAuntUncleNieceNephew    BloodRelationship = "aunt-uncle-niece-nephew"
	BloodFirstCousins            BloodRelationship = "first-cousins"
	BloodFirstCousinsOnceRemoved BloodRelationship = "first-cousins-once-removed"
	BloodSecondCousinsOrMore     BloodRelationship = "second-cousins-or-more"
)

// AdoptionRelationship categorizes relation through adoption.
type AdoptionRelationship string

const (
	AdoptionNone            AdoptionRelationship = ""
	AdoptionOneAdoptedOther AdoptionRelationship = "one-adopted-other"
	AdoptionAdoptedSiblings AdoptionRelationship = "adopted-siblings"
	AdoptionOther           AdoptionRelationship = "other"
)

// MarriageRelationship categorizes relation through a parent's marriage.
type MarriageRelationship string

const (
	MarriageNone         MarriageRelationship = ""
	MarriageStepSiblings MarriageRelationship = "step-siblings"
	MarriageOther        MarriageRelationship = "other"
)

// CheckBloodRelationship evaluates blood-relation marriage restrictions.
//
// Relations closer than first cousins, and aunt/uncle with niece/nephew, are
// barred in every jurisdiction. First-cousin variants depend on the chosen
// jurisdiction's statute; until a jurisdiction is picked the verdict is
// undetermined (allowed). Second cousins or more distant are always allowed.
func CheckBloodRelationship(rel BloodRelationship, marriageState string) Verdict {
	switch rel {
	case BloodCloserThanFirstCousins, BloodAuntUncleNieceNephew:
		return universalBar()
	case BloodFirstCousins, BloodFirstCousinsOnceRemoved:
		if marriageState == "" {
			return allowed()
		}
		j, ok := marriagelaw.Lookup(marriageState)
		if !ok {
			return allowed()
		}
		if j.FirstCousinsAllowed {
			return allowed()
		}
		return stateBar(j.Name)
	default:
		return allowed()
	}
}

// CheckAdoptionRelationship evaluates adoption-relation marriage restrictions.
//
// A parent-child legal relationship created by adoption is barred everywhere.
// Adopted siblings depend on a fixed jurisdiction allow-list. Any other
// adoption relation cannot be classified and needs individual review.
func CheckAdoptionRelationship(rel AdoptionRelationship, marriageState string) Verdict {
	switch rel {
	case AdoptionOneAdoptedOther:
		return universalBar()
	case AdoptionAdoptedSiblings:
		if marriageState == "" {
			return allowed()
		}
		j, ok := marriagelaw.Lookup(marriageState)
		if !ok {
			return allowed()
		}
		if marriagelaw.AdoptedSiblingsAllowed(marriageState) {
			return allowed()
		}
		return stateBar(j.Name)
	case AdoptionOther:
		return manualReview()
	default:
		return allowed()
	}
}

// CheckMarriageRelationship evaluates step-family marriage restrictions.
func CheckMarriageRelationship(rel MarriageRelationship, marriageState string) Verdict {
	switch rel {
	case MarriageStepSiblings:
		if marriageState == "" {
			return allowed()
		}
		j, ok := marriagelaw.Lookup(marriageState)
		if !ok {
			return allowed()
		}
		if marriagelaw.StepSiblingsAllowed(marriageState) {
			return allowed()
		}
		return stateBar(j.Name)
	case MarriageOther:
		return manualReview()
	default:
		return allowed()
	}
}
