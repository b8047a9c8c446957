package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"promissa/internal/coverage"
	"promissa/internal/eligibility"
	"promissa/internal/intake/models"
	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

const reviewTimeout = 5 * time.Second

// EligibilityReport groups every rule verdict from the relationship and
// criminal-history screens.
type EligibilityReport struct {
	Blood        eligibility.Verdict              `json:"blood"`
	Adoption     eligibility.Verdict              `json:"adoption"`
	Marriage     eligibility.Verdict              `json:"marriage"`
	Age          eligibility.AgeVerdict           `json:"age"`
	Criminal     eligibility.CriminalGate         `json:"criminal"`
	Requirements []eligibility.RequirementVerdict `json:"requirements"`
}

// HistoryReport pairs a coverage report with the completeness findings for
// one five-year history list.
type HistoryReport struct {
	Coverage   coverage.Report          `json:"coverage"`
	Incomplete []coverage.MissingFields `json:"incomplete,omitempty"`
}

// ReadinessReport is the full pre-filing review: every disqualifying rule
// and both history timelines evaluated fresh from the current answers.
type ReadinessReport struct {
	SessionID   string            `json:"session_id"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
	Eligibility EligibilityReport `json:"eligibility"`
	Addresses   HistoryReport     `json:"addresses"`
	Employment  HistoryReport     `json:"employment"`
	Ready       bool              `json:"ready"`
}

// reviewResult holds results from the parallel evaluation branches. Each
// goroutine writes to its own field, avoiding data races.
type reviewResult struct {
	eligibility EligibilityReport
	addresses   HistoryReport
	employment  HistoryReport
}

// EvaluateReadiness runs the whole rule set over the session's answers. The
// three branches are independent, so they run in parallel with shared
// cancellation; the evaluation time is pinned once for consistency.
func (s *Service) EvaluateReadiness(ctx context.Context, sessionID id.SessionID) (*ReadinessReport, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	evalTime := s.now()
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "intake.evaluate_readiness", trace.WithAttributes(
		attribute.String("session_id", sess.ID.String()),
		attribute.String("role", string(sess.Role)),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, reviewTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	var result reviewResult

	g.Go(func() error {
		result.eligibility = s.evaluateEligibility(sess.Answers, evalTime)
		return nil
	})
	g.Go(func() error {
		report, err := s.evaluateHistory(sess, prefixed(sess.Role, "AddressHistory"), evalTime)
		if err != nil {
			return err
		}
		result.addresses = report
		return nil
	})
	g.Go(func() error {
		report, err := s.evaluateHistory(sess, prefixed(sess.Role, "EmploymentHistory"), evalTime)
		if err != nil {
			return err
		}
		result.employment = report
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	report := &ReadinessReport{
		SessionID:   sess.ID.String(),
		EvaluatedAt: evalTime,
		Eligibility: result.eligibility,
		Addresses:   result.addresses,
		Employment:  result.employment,
	}
	report.Ready = s.isReady(report)

	s.recordReviewMetrics(report, time.Since(start))
	span.SetAttributes(attribute.Bool("ready", report.Ready))
	return report, nil
}

func (s *Service) evaluateEligibility(ans models.Answers, evalTime time.Time) EligibilityReport {
	marriageState := ans.String("marriageState")

	metIMB, _ := ans.Bool("metThroughIMB")
	imbProvided, _ := ans.Bool("imbDisclosureProvided")
	sponsorFree, _ := ans.Bool("sponsorFreeToMarry")
	beneficiaryFree, _ := ans.Bool("beneficiaryFreeToMarry")
	intend, _ := ans.Bool("intendToMarryWithin90Days")

	return EligibilityReport{
		Blood:    eligibility.CheckBloodRelationship(eligibility.BloodRelationship(ans.String("bloodRelationship")), marriageState),
		Adoption: eligibility.CheckAdoptionRelationship(eligibility.AdoptionRelationship(ans.String("adoptionRelationship")), marriageState),
		Marriage: eligibility.CheckMarriageRelationship(eligibility.MarriageRelationship(ans.String("marriageRelationship")), marriageState),
		Age:      eligibility.CheckAgeRequirements(marriageState, ans.Date("sponsorDOB"), ans.Date("beneficiaryDOB"), evalTime),
		Criminal: eligibility.CheckCriminalHistory(criminalHistoryFrom(ans)),
		Requirements: []eligibility.RequirementVerdict{
			eligibility.CheckLegalFreedom(sponsorFree, beneficiaryFree),
			eligibility.CheckMeetingRecency(ans.Date("lastMeetingDate"), evalTime),
			eligibility.CheckIMBDisclosure(metIMB, imbProvided),
			eligibility.CheckMarriageIntent(intend),
		},
	}
}

func (s *Service) evaluateHistory(sess *models.Session, fieldID string, evalTime time.Time) (HistoryReport, error) {
	raw, ok := sess.Answers.Lookup(fieldID)
	if !ok {
		// No entries at all: the coverage report itself says Empty.
		return HistoryReport{Coverage: coverage.Calculate(nil, evalTime)}, nil
	}
	entries, err := models.TimelineFromAnswer(raw)
	if err != nil {
		return HistoryReport{}, dErrors.Wrap(err, dErrors.CodeInvalidAnswer, "stored history is malformed")
	}
	cov, err := models.CoverageEntries(entries)
	if err != nil {
		return HistoryReport{}, dErrors.Wrap(err, dErrors.CodeInvalidAnswer, "stored history is malformed")
	}

	validator := coverage.Validator{RequiredFields: timelineRequirements[fieldID]}
	return HistoryReport{
		Coverage:   coverage.Calculate(cov, evalTime),
		Incomplete: validator.Validate(cov),
	}, nil
}

// isReady applies the overall gate: no disqualifying verdicts, every
// non-waiverable requirement met, both histories complete and fully covered.
func (s *Service) isReady(r *ReadinessReport) bool {
	e := r.Eligibility
	for _, v := range []eligibility.Verdict{e.Blood, e.Adoption, e.Marriage} {
		if !v.Allowed && !v.ManualReview {
			return false
		}
	}
	if !e.Age.Met || e.Criminal.Blocked || !e.Criminal.Complete {
		return false
	}
	for _, req := range e.Requirements {
		if !req.Met && !req.WaiverPossible {
			return false
		}
	}
	for _, h := range []HistoryReport{r.Addresses, r.Employment} {
		if !h.Coverage.FullyCovered() || len(h.Incomplete) > 0 {
			return false
		}
	}
	return true
}

func (s *Service) recordReviewMetrics(r *ReadinessReport, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveReviewLatency(elapsed.Seconds())

	e := r.Eligibility
	if !e.Blood.Allowed && !e.Blood.ManualReview {
		s.metrics.IncrementDisqualifications("blood_relationship")
	}
	if !e.Adoption.Allowed && !e.Adoption.ManualReview {
		s.metrics.IncrementDisqualifications("adoption_relationship")
	}
	if !e.Marriage.Allowed && !e.Marriage.ManualReview {
		s.metrics.IncrementDisqualifications("step_relationship")
	}
	if !e.Age.Met {
		s.metrics.IncrementDisqualifications("marriage_age")
	}
	if e.Criminal.Blocked {
		s.metrics.IncrementDisqualifications("criminal_history")
	}

	gapDays := 0
	for _, h := range []HistoryReport{r.Addresses, r.Employment} {
		for _, gap := range h.Coverage.Gaps {
			gapDays += gap.Days
		}
	}
	s.metrics.ObserveCoverageGapDays(float64(gapDays))
}

// prefixed builds a role-namespaced answer key, e.g. sponsorAddressHistory.
func prefixed(role id.Role, suffix string) string {
	return string(role) + suffix
}
