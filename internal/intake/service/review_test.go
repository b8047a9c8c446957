package service

import (
	"context"

	id "promissa/pkg/domain"
)

func (s *ServiceSuite) TestEvaluateReadinessHappyPath() {
	created := s.newSession(id.RoleSponsor)
	s.answerReadySponsor(created.Session.ID)

	report, err := s.service.EvaluateReadiness(context.Background(), created.Session.ID)
	s.Require().NoError(err)

	s.True(report.Ready)
	s.True(report.Eligibility.Blood.Allowed)
	s.True(report.Eligibility.Age.Met)
	s.False(report.Eligibility.Criminal.Blocked)
	s.True(report.Eligibility.Criminal.Complete)
	for _, req := range report.Eligibility.Requirements {
		s.True(req.Met, "requirement %s", req.Requirement)
	}
	s.True(report.Addresses.Coverage.FullyCovered())
	s.True(report.Employment.Coverage.FullyCovered())
	s.Empty(report.Addresses.Incomplete)
	s.Equal(evalDate, report.EvaluatedAt)
}

func (s *ServiceSuite) TestEvaluateReadinessEmptySession() {
	created := s.newSession(id.RoleSponsor)

	report, err := s.service.EvaluateReadiness(context.Background(), created.Session.ID)
	s.Require().NoError(err)

	s.False(report.Ready)
	// No jurisdiction, no relationship answers: nothing disqualifies yet.
	s.True(report.Eligibility.Blood.Allowed)
	s.True(report.Eligibility.Age.Met)
	// But the disclosures are unanswered and the histories empty.
	s.False(report.Eligibility.Criminal.Complete)
	s.True(report.Addresses.Coverage.Empty)
	s.True(report.Employment.Coverage.Empty)
}

func (s *ServiceSuite) TestEvaluateReadinessDisqualified() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answerReadySponsor(sid)
	s.answer(sid, "bloodRelated", true)
	s.answer(sid, "bloodRelationship", "closer-than-first-cousins")

	report, err := s.service.EvaluateReadiness(context.Background(), sid)
	s.Require().NoError(err)
	s.False(report.Ready)
	s.True(report.Eligibility.Blood.RequiresStop)
}

func (s *ServiceSuite) TestEvaluateReadinessCriminalBlock() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answerReadySponsor(sid)
	s.answer(sid, "sponsorDomesticViolence", true)

	report, err := s.service.EvaluateReadiness(context.Background(), sid)
	s.Require().NoError(err)
	s.False(report.Ready)
	s.True(report.Eligibility.Criminal.Blocked)
	s.Equal(3, report.Eligibility.Criminal.DisabledFrom)
}

func (s *ServiceSuite) TestEvaluateReadinessMissedMeetingIsWaiverEligible() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answerReadySponsor(sid)
	s.answer(sid, "lastMeetingDate", "2023-01-01")

	report, err := s.service.EvaluateReadiness(context.Background(), sid)
	s.Require().NoError(err)

	found := false
	for _, req := range report.Eligibility.Requirements {
		if req.Requirement == "in_person_meeting" {
			found = true
			s.False(req.Met)
			s.True(req.WaiverPossible)
		}
	}
	s.Require().True(found)
	s.True(report.Ready, "a waiver-eligible miss does not block readiness")
}

func (s *ServiceSuite) TestEvaluateReadinessGapsSurfaceInReport() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answerReadySponsor(sid)
	s.answer(sid, "sponsorAddressHistory", []any{
		map[string]any{
			"label":   "current flat",
			"start":   "2024-01-01",
			"current": true,
			"details": map[string]any{"street": "1 Elm St", "city": "Boston", "country": "US"},
		},
	})

	report, err := s.service.EvaluateReadiness(context.Background(), sid)
	s.Require().NoError(err)
	s.False(report.Ready)
	s.Require().Len(report.Addresses.Coverage.Gaps, 1)
	s.Less(report.Addresses.Coverage.CoveragePercent, 100)
}
