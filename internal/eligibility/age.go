package eligibility

import (
	"time"

	"promissa/internal/reference/marriagelaw"
	"promissa/pkg/domain"
)

// Person names which party an age verdict refers to.
type Person string

const (
	PersonSponsor     Person = "sponsor"
	PersonBeneficiary Person = "beneficiary"
)

// AgeVerdict reports whether both parties meet the chosen jurisdiction's
// minimum marriage age. When not met, Person names the first failing party
// (sponsor checked before beneficiary), Age their current whole-year age, and
// RequiredAge the jurisdiction's minimum.
type AgeVerdict struct {
	Met         bool   `json:"met"`
	Person      Person `json:"person,omitempty"`
	Age         int    `json:"age,omitempty"`
	RequiredAge int    `json:"required_age,omitempty"`
}

// CheckAgeRequirements compares both parties' calendar ages against the
// selected marriage jurisdiction's minimum. With no jurisdiction selected the
// verdict is always met (undetermined, not failing). Zero birth dates are
// skipped, validation incompleteness is the screen layer's concern.
func CheckAgeRequirements(marriageState string, sponsorDOB, beneficiaryDOB, today time.Time) AgeVerdict {
	if marriageState == "" {
		return AgeVerdict{Met: true}
	}
	j, ok := marriagelaw.Lookup(marriageState)
	if !ok {
		return AgeVerdict{Met: true}
	}

	// Sponsor first, by contract: only the first failing party is reported.
	if !sponsorDOB.IsZero() && !domain.IsAtLeast(j.MinimumAge, sponsorDOB, today) {
		return AgeVerdict{
			Person:      PersonSponsor,
			Age:         domain.AgeInYears(sponsorDOB, today),
			RequiredAge: j.MinimumAge,
		}
	}
	if !beneficiaryDOB.IsZero() && !domain.IsAtLeast(j.MinimumAge, beneficiaryDOB, today) {
		return AgeVerdict{
			Person:      PersonBeneficiary,
			Age:         domain.AgeInYears(beneficiaryDOB, today),
			RequiredAge: j.MinimumAge,
		}
	}
	return AgeVerdict{Met: true}
}
