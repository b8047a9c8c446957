package domain

import dErrors "promissa/pkg/domain-errors"

// Role identifies which party is filling the questionnaire. Answer keys are
// namespaced by role prefix, and sections can be restricted to one role.
type Role string

const (
	RoleSponsor     Role = "sponsor"
	RoleBeneficiary Role = "beneficiary"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleSponsor || r == RoleBeneficiary
}

// ParseRole validates a role string at trust boundaries.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSponsor, RoleBeneficiary:
		return Role(s), nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "role must be sponsor or beneficiary")
	}
}
