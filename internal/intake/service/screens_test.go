package service

import (
	"context"

	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

func (s *ServiceSuite) TestCurrentScreenStartsAtFirst() {
	created := s.newSession(id.RoleSponsor)

	view, err := s.service.CurrentScreen(context.Background(), created.Session.ID)
	s.Require().NoError(err)
	s.Equal("/sponsor/name", view.Screen.Path)
	s.Equal(0, view.Position)
	s.True(view.First)
	s.False(view.Last)
	s.False(view.CanAdvance, "required name fields are unanswered")
}

func (s *ServiceSuite) TestNavigateForwardRequiresCompleteScreen() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	ctx := context.Background()

	_, err := s.service.Navigate(ctx, sid, "next")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	s.answer(sid, "sponsorFirstName", "Alex")
	s.answer(sid, "sponsorLastName", "Rivera")

	view, err := s.service.Navigate(ctx, sid, "next")
	s.Require().NoError(err)
	s.Equal("/sponsor/birth", view.Screen.Path)
}

func (s *ServiceSuite) TestNavigateBackwardAlwaysAllowed() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	ctx := context.Background()

	s.answer(sid, "sponsorFirstName", "Alex")
	s.answer(sid, "sponsorLastName", "Rivera")
	_, err := s.service.Navigate(ctx, sid, "next")
	s.Require().NoError(err)

	view, err := s.service.Navigate(ctx, sid, "previous")
	s.Require().NoError(err)
	s.Equal("/sponsor/name", view.Screen.Path)

	_, err = s.service.Navigate(ctx, sid, "previous")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestNavigateRejectsUnknownDirection() {
	created := s.newSession(id.RoleSponsor)
	_, err := s.service.Navigate(context.Background(), created.Session.ID, "sideways")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestScreenByPath() {
	created := s.newSession(id.RoleSponsor)
	ctx := context.Background()

	view, err := s.service.Screen(ctx, created.Session.ID, "/relationship/basis")
	s.Require().NoError(err)
	s.Equal("relationship-basis", view.Screen.Subsection)

	_, err = s.service.Screen(ctx, created.Session.ID, "/relationship/blood")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnknownScreen), "hidden screens are unknown")

	s.answer(created.Session.ID, "bloodRelated", true)
	_, err = s.service.Screen(ctx, created.Session.ID, "/relationship/blood")
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestStalePathSnapsToFirstScreen() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	ctx := context.Background()

	// Walk onto the blood-relationship screen, then flip its branch off.
	s.answer(sid, "bloodRelated", true)
	sess, err := s.service.SetAnswer(ctx, sid, "bloodRelationship", "second-cousins-or-more")
	s.Require().NoError(err)
	sess.Path = "/relationship/blood"
	s.Require().NoError(s.store.Update(ctx, sess))

	s.answer(sid, "bloodRelated", false)

	view, err := s.service.CurrentScreen(ctx, sid)
	s.Require().NoError(err)
	s.Equal("/sponsor/name", view.Screen.Path)
}

func (s *ServiceSuite) TestUniversalBarBlocksAdvance() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "bloodRelated", true)
	s.answer(sid, "bloodRelationship", "aunt-uncle-niece-nephew")

	view, err := s.service.Screen(context.Background(), sid, "/relationship/blood")
	s.Require().NoError(err)
	s.False(view.CanAdvance)
	s.Require().Len(view.Blockers, 1)
	s.Equal("blood_relationship", view.Blockers[0].Rule)
	s.Require().NotNil(view.Blockers[0].Verdict)
	s.True(view.Blockers[0].Verdict.RequiresStop)
}

func (s *ServiceSuite) TestStateBarNamesTheJurisdiction() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "marriageState", "TX")
	s.answer(sid, "bloodRelated", true)
	s.answer(sid, "bloodRelationship", "first-cousins")

	view, err := s.service.Screen(context.Background(), sid, "/relationship/blood")
	s.Require().NoError(err)
	s.False(view.CanAdvance)
	s.Require().Len(view.Blockers, 1)
	s.Equal("Texas", view.Blockers[0].Verdict.StateName)

	// A permissive jurisdiction cures a state bar.
	s.answer(sid, "marriageState", "CA")
	view, err = s.service.Screen(context.Background(), sid, "/relationship/blood")
	s.Require().NoError(err)
	s.True(view.CanAdvance)
}

func (s *ServiceSuite) TestManualReviewIsAdvisory() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "adoptionRelated", true)
	s.answer(sid, "adoptionRelationship", "other")

	view, err := s.service.Screen(context.Background(), sid, "/relationship/adoption")
	s.Require().NoError(err)
	s.True(view.CanAdvance, "manual review flags but does not gate")
	s.Require().Len(view.Blockers, 1)
	s.True(view.Blockers[0].Advisory)
}

func (s *ServiceSuite) TestUnderageBlocksOnMarriageStateScreen() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "sponsorDOB", "2010-01-15") // 16 at the pinned date
	s.answer(sid, "marriageState", "CA")

	view, err := s.service.Screen(context.Background(), sid, "/relationship/marriage-state")
	s.Require().NoError(err)
	s.False(view.CanAdvance)
	s.Require().Len(view.Blockers, 1)
	s.Equal("marriage_age", view.Blockers[0].Rule)
}

func (s *ServiceSuite) TestCriminalDisclosureBlocks() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "sponsorProtectionOrders", true)

	view, err := s.service.Screen(context.Background(), sid, "/sponsor/criminal/sponsorProtectionOrders")
	s.Require().NoError(err)
	s.False(view.CanAdvance)
	s.Require().Len(view.Blockers, 1)
	s.Equal("criminal_history", view.Blockers[0].Rule)

	// Flipping back to No lifts the gate; the recompute holds no grudges.
	s.answer(sid, "sponsorProtectionOrders", false)
	view, err = s.service.Screen(context.Background(), sid, "/sponsor/criminal/sponsorProtectionOrders")
	s.Require().NoError(err)
	s.True(view.CanAdvance)
}

func (s *ServiceSuite) TestMeetingRecencyIsAdvisory() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "metInPerson", true)
	s.answer(sid, "lastMeetingDate", "2023-01-01") // outside the 2-year window

	view, err := s.service.Screen(context.Background(), sid, "/relationship/meeting")
	s.Require().NoError(err)
	s.True(view.CanAdvance, "waiver-eligible requirements do not gate")
	s.Require().Len(view.Blockers, 1)
	s.True(view.Blockers[0].Advisory)
}

func (s *ServiceSuite) TestHistoryGapsBlock() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID

	// One entry starting well inside the window leaves a prefix gap.
	s.answer(sid, "sponsorAddressHistory", []any{
		map[string]any{
			"label":   "current flat",
			"start":   "2024-01-01",
			"current": true,
			"details": map[string]any{"street": "1 Elm St", "city": "Boston", "country": "US"},
		},
	})

	view, err := s.service.Screen(context.Background(), sid, "/sponsor/addresses")
	s.Require().NoError(err)
	s.False(view.CanAdvance)
	s.Require().Len(view.Blockers, 1)
	s.Equal("history_coverage", view.Blockers[0].Rule)

	// Filling the gap clears the blocker.
	s.answer(sid, "sponsorAddressHistory", fullHistory(map[string]any{
		"street": "1 Elm St", "city": "Boston", "country": "US",
	}))
	view, err = s.service.Screen(context.Background(), sid, "/sponsor/addresses")
	s.Require().NoError(err)
	s.True(view.CanAdvance)
}

func (s *ServiceSuite) TestHistoryMissingDetailsBlock() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID

	s.answer(sid, "sponsorEmploymentHistory", fullHistory(map[string]any{
		"employer": "Acme Corp", // occupation missing
	}))

	view, err := s.service.Screen(context.Background(), sid, "/sponsor/employment")
	s.Require().NoError(err)
	s.False(view.CanAdvance)
	s.Require().Len(view.Blockers, 1)
	s.Equal("history_completeness", view.Blockers[0].Rule)
	s.Contains(view.Blockers[0].Message, "occupation")
}
