package eligibility

import (
	"time"

	"promissa/pkg/domain"
)

// meetingWindowYears is the statutory in-person meeting window: the couple
// must have met within the two years before filing, absent a waiver.
const meetingWindowYears = 2

// Requirement identifies one of the threshold K-1 requirements evaluated on
// the relationship screens.
type Requirement string

const (
	RequirementLegalFreedom  Requirement = "legal_freedom_to_marry"
	RequirementMeetingWindow Requirement = "in_person_meeting"
	RequirementIMBDisclosure Requirement = "imb_disclosure"
	RequirementIntent90Days  Requirement = "marriage_intent_90_days"
)

// RequirementVerdict reports a single threshold requirement. Unlike the
// relationship verdicts these are binary: either satisfied or blocking, with
// WaiverPossible marking the ones a waiver filing could cure.
type RequirementVerdict struct {
	Requirement    Requirement `json:"requirement"`
	Met            bool        `json:"met"`
	WaiverPossible bool        `json:"waiver_possible,omitempty"`
}

// CheckLegalFreedom verifies both parties are legally free to marry: any
// prior marriage must be terminated (divorce, annulment, or death).
func CheckLegalFreedom(sponsorFree, beneficiaryFree bool) RequirementVerdict {
	return RequirementVerdict{
		Requirement: RequirementLegalFreedom,
		Met:         sponsorFree && beneficiaryFree,
	}
}

// CheckMeetingRecency verifies the couple met in person within the trailing
// two-year window. A zero lastMeeting means they have not met; the meeting
// requirement is waiver-eligible either way.
func CheckMeetingRecency(lastMeeting, today time.Time) RequirementVerdict {
	met := !lastMeeting.IsZero() && domain.WithinTrailingYears(meetingWindowYears, lastMeeting, today)
	return RequirementVerdict{
		Requirement:    RequirementMeetingWindow,
		Met:            met,
		WaiverPossible: !met,
	}
}

// CheckIMBDisclosure verifies the international-marriage-broker disclosure:
// if the couple met through an IMB, the broker disclosure must be on file.
func CheckIMBDisclosure(metThroughIMB, disclosureProvided bool) RequirementVerdict {
	return RequirementVerdict{
		Requirement: RequirementIMBDisclosure,
		Met:         !metThroughIMB || disclosureProvided,
	}
}

// CheckMarriageIntent verifies both parties intend to marry within 90 days
// of the beneficiary's admission.
func CheckMarriageIntent(bothIntend bool) RequirementVerdict {
	return RequirementVerdict{
		Requirement: RequirementIntent90Days,
		Met:         bothIntend,
	}
}
