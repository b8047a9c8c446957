package service

import (
	"context"
	"fmt"
	"strings"

	"promissa/internal/coverage"
	"promissa/internal/eligibility"
	"promissa/internal/intake/models"
	"promissa/internal/sequence"
	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

// Blocker explains why a screen refuses to advance. Advisory blockers are
// surfaced to the applicant but do not gate navigation (waiver-eligible
// requirements, manual-review referrals); hard blockers do.
type Blocker struct {
	Rule     string               `json:"rule"`
	Message  string               `json:"message"`
	Advisory bool                 `json:"advisory,omitempty"`
	Verdict  *eligibility.Verdict `json:"verdict,omitempty"`
}

// ScreenView is everything the client needs to render one screen.
type ScreenView struct {
	Screen     sequence.Screen `json:"screen"`
	Answers    map[string]any  `json:"answers"`
	Position   int             `json:"position"`
	Total      int             `json:"total"`
	First      bool            `json:"first"`
	Last       bool            `json:"last"`
	CanAdvance bool            `json:"can_advance"`
	Blockers   []Blocker       `json:"blockers,omitempty"`
}

// CurrentScreen renders the session's current screen. If an answer change
// has made the stored path invisible, the session snaps back to the first
// applicable screen rather than erroring.
func (s *Service) CurrentScreen(ctx context.Context, sessionID id.SessionID) (*ScreenView, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view, moved, err := s.screenView(sess, sess.Path)
	if err != nil {
		return nil, err
	}
	if moved {
		if err := s.store.Update(ctx, sess); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist position")
		}
	}
	return view, nil
}

// Screen renders an arbitrary screen by path without moving the session.
func (s *Service) Screen(ctx context.Context, sessionID id.SessionID, path string) (*ScreenView, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	screen, ok := s.sequencer.Find(path, sess.Role, sess.Answers)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnknownScreen, fmt.Sprintf("unknown screen: %s", path))
	}
	return s.buildView(sess, screen), nil
}

// Navigate moves the session one screen forward or back. Forward movement is
// gated on the current screen's hard blockers and required fields; backward
// movement is always allowed.
func (s *Service) Navigate(ctx context.Context, sessionID id.SessionID, direction string) (*ScreenView, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current, _, err := s.screenView(sess, sess.Path)
	if err != nil {
		return nil, err
	}

	var next string
	var ok bool
	switch direction {
	case "next":
		if !current.CanAdvance {
			return nil, dErrors.New(dErrors.CodeValidation, "current screen is incomplete or blocked")
		}
		next, ok = s.sequencer.Next(current.Screen.Path, sess.Role, sess.Answers)
		if !ok {
			return nil, dErrors.New(dErrors.CodeConflict, "already at the last screen")
		}
	case "previous":
		next, ok = s.sequencer.Previous(current.Screen.Path, sess.Role, sess.Answers)
		if !ok {
			return nil, dErrors.New(dErrors.CodeConflict, "already at the first screen")
		}
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "direction must be next or previous")
	}

	sess.Path = next
	sess.Touch(s.now())
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist position")
	}

	screen, _ := s.sequencer.Find(next, sess.Role, sess.Answers)
	return s.buildView(sess, screen), nil
}

// screenView resolves a path against the current screen list, snapping the
// session to the first screen when the path is stale. The moved flag tells
// the caller whether the session needs persisting.
func (s *Service) screenView(sess *models.Session, path string) (*ScreenView, bool, error) {
	screen, ok := s.sequencer.Find(path, sess.Role, sess.Answers)
	if !ok {
		screens := s.sequencer.Screens(sess.Role, sess.Answers)
		if len(screens) == 0 {
			return nil, false, dErrors.New(dErrors.CodeInternal, "no screens applicable for role")
		}
		screen = screens[0]
		sess.Path = screen.Path
		return s.buildView(sess, screen), true, nil
	}
	return s.buildView(sess, screen), false, nil
}

func (s *Service) buildView(sess *models.Session, screen sequence.Screen) *ScreenView {
	answers := make(map[string]any, len(screen.Fields))
	for _, f := range screen.Fields {
		if v, ok := sess.Answers.Lookup(f.ID); ok {
			answers[f.ID] = v
		}
	}

	position, total := s.sequencer.Progress(screen.Path, sess.Role, sess.Answers)
	blockers := s.blockersFor(sess, screen)

	canAdvance := true
	for _, b := range blockers {
		if !b.Advisory {
			canAdvance = false
			break
		}
	}

	return &ScreenView{
		Screen:     screen,
		Answers:    answers,
		Position:   position,
		Total:      total,
		First:      s.sequencer.IsFirst(screen.Path, sess.Role, sess.Answers),
		Last:       s.sequencer.IsLast(screen.Path, sess.Role, sess.Answers),
		CanAdvance: canAdvance,
		Blockers:   blockers,
	}
}

// blockersFor runs the rules attached to a screen against the current
// answers. Everything is recomputed from scratch on every call; verdicts are
// never cached on the session.
func (s *Service) blockersFor(sess *models.Session, screen sequence.Screen) []Blocker {
	var blockers []Blocker
	ans := sess.Answers
	marriageState := ans.String("marriageState")

	if missing := missingRequired(screen, ans); len(missing) > 0 {
		blockers = append(blockers, Blocker{
			Rule:    "required_fields",
			Message: "unanswered required fields: " + strings.Join(missing, ", "),
		})
	}

	switch screen.Subsection {
	case "marriage-state":
		v := eligibility.CheckAgeRequirements(marriageState, ans.Date("sponsorDOB"), ans.Date("beneficiaryDOB"), s.now())
		if !v.Met {
			blockers = append(blockers, Blocker{
				Rule: "marriage_age",
				Message: fmt.Sprintf("the %s is %d but the selected state requires %d",
					v.Person, v.Age, v.RequiredAge),
			})
		}

	case "blood-relationship":
		v := eligibility.CheckBloodRelationship(eligibility.BloodRelationship(ans.String("bloodRelationship")), marriageState)
		blockers = appendVerdict(blockers, "blood_relationship", v)

	case "adoption-relationship":
		v := eligibility.CheckAdoptionRelationship(eligibility.AdoptionRelationship(ans.String("adoptionRelationship")), marriageState)
		blockers = appendVerdict(blockers, "adoption_relationship", v)

	case "marriage-relationship":
		v := eligibility.CheckMarriageRelationship(eligibility.MarriageRelationship(ans.String("marriageRelationship")), marriageState)
		blockers = appendVerdict(blockers, "step_relationship", v)

	case "meeting":
		if met, answered := ans.Bool("metInPerson"); answered {
			v := eligibility.CheckMeetingRecency(ans.Date("lastMeetingDate"), s.now())
			if !met || !v.Met {
				blockers = append(blockers, Blocker{
					Rule:     "meeting_recency",
					Message:  "an in-person meeting within the last two years is required unless a waiver is granted",
					Advisory: true,
				})
			}
		}

	case "imb":
		if metIMB, answered := ans.Bool("metThroughIMB"); answered && metIMB {
			provided, _ := ans.Bool("imbDisclosureProvided")
			if v := eligibility.CheckIMBDisclosure(metIMB, provided); !v.Met {
				blockers = append(blockers, Blocker{
					Rule:    "imb_disclosure",
					Message: "the broker's disclosure must be obtained before filing",
				})
			}
		}

	case "intent":
		if intend, answered := ans.Bool("intendToMarryWithin90Days"); answered {
			if v := eligibility.CheckMarriageIntent(intend); !v.Met {
				blockers = append(blockers, Blocker{
					Rule:    "marriage_intent",
					Message: "both parties must intend to marry within 90 days of arrival",
				})
			}
		}

	case "legal-freedom":
		sponsorFree, sOK := ans.Bool("sponsorFreeToMarry")
		beneficiaryFree, bOK := ans.Bool("beneficiaryFreeToMarry")
		if sOK && bOK {
			if v := eligibility.CheckLegalFreedom(sponsorFree, beneficiaryFree); !v.Met {
				blockers = append(blockers, Blocker{
					Rule:    "legal_freedom",
					Message: "both parties must be legally free to marry",
				})
			}
		}

	case "criminal-disclosures":
		gate := eligibility.CheckCriminalHistory(criminalHistoryFrom(ans))
		if gate.Blocked {
			blockers = append(blockers, Blocker{
				Rule:    "criminal_history",
				Message: "a disclosed history requires individual review before the petition can proceed",
			})
		}
	}

	blockers = append(blockers, s.historyBlockers(screen, ans)...)
	return blockers
}

// historyBlockers gates the five-year history screens on entry completeness
// and full window coverage.
func (s *Service) historyBlockers(screen sequence.Screen, ans models.Answers) []Blocker {
	var blockers []Blocker
	for _, f := range screen.Fields {
		required, ok := timelineRequirements[f.ID]
		if !ok {
			continue
		}
		raw, answered := ans.Lookup(f.ID)
		if !answered {
			continue // required_fields already covers the empty case
		}
		entries, err := models.TimelineFromAnswer(raw)
		if err != nil {
			continue
		}
		cov, convErr := models.CoverageEntries(entries)
		if convErr != nil {
			continue
		}

		validator := coverage.Validator{RequiredFields: required}
		for _, miss := range validator.Validate(cov) {
			blockers = append(blockers, Blocker{
				Rule: "history_completeness",
				Message: fmt.Sprintf("entry %q is missing: %s",
					miss.Label, strings.Join(miss.Fields, ", ")),
			})
		}

		report := coverage.Calculate(cov, s.now())
		if !report.FullyCovered() {
			for _, gap := range report.Gaps {
				blockers = append(blockers, Blocker{
					Rule:    "history_coverage",
					Message: "uncovered period: " + gap.Description,
				})
			}
			if report.Empty {
				blockers = append(blockers, Blocker{
					Rule:    "history_coverage",
					Message: "the full five-year window must be accounted for",
				})
			}
		}
	}
	return blockers
}

func appendVerdict(blockers []Blocker, rule string, v eligibility.Verdict) []Blocker {
	switch {
	case v.Allowed:
		return blockers
	case v.ManualReview:
		verdict := v
		return append(blockers, Blocker{
			Rule:     rule,
			Message:  "this relationship cannot be classified automatically; contact support for review",
			Advisory: true,
			Verdict:  &verdict,
		})
	case v.RequiresStop:
		verdict := v
		return append(blockers, Blocker{
			Rule:    rule,
			Message: "this relationship cannot be the basis of a valid marriage in any state",
			Verdict: &verdict,
		})
	default:
		verdict := v
		return append(blockers, Blocker{
			Rule:    rule,
			Message: fmt.Sprintf("this relationship cannot be the basis of a valid marriage in %s", v.StateName),
			Verdict: &verdict,
		})
	}
}

// missingRequired lists the screen's required visible fields without answers.
func missingRequired(screen sequence.Screen, ans models.Answers) []string {
	var missing []string
	for _, f := range screen.Fields {
		if !f.Required || f.Kind == "info" {
			continue
		}
		if !f.ShowWhen.Evaluate(ans) {
			continue
		}
		if _, ok := ans.Lookup(f.ID); !ok {
			missing = append(missing, f.ID)
		}
	}
	return missing
}

// criminalHistoryFrom maps the five disclosure answers into the rule model.
func criminalHistoryFrom(ans models.Answers) eligibility.CriminalHistory {
	return eligibility.CriminalHistory{
		ProtectionOrders:    disclosureFrom(ans, "sponsorProtectionOrders"),
		ViolentCrimes:       disclosureFrom(ans, "sponsorViolentCrimes"),
		DomesticViolence:    disclosureFrom(ans, "sponsorDomesticViolence"),
		DrugAlcoholOffenses: disclosureFrom(ans, "sponsorDrugAlcoholOffenses"),
		AnyOtherConvictions: disclosureFrom(ans, "sponsorOtherConvictions"),
	}
}

func disclosureFrom(ans models.Answers, key string) eligibility.Disclosure {
	b, answered := ans.Bool(key)
	switch {
	case !answered:
		return eligibility.DisclosureUnanswered
	case b:
		return eligibility.DisclosureYes
	default:
		return eligibility.DisclosureNo
	}
}
