package service

import (
	"context"

	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

func (s *ServiceSuite) TestCreateSession() {
	created := s.newSession(id.RoleSponsor)

	s.False(created.Session.ID.IsNil())
	s.Equal(id.RoleSponsor, created.Session.Role)
	s.Equal("/sponsor/name", created.Session.Path, "session starts on the first sponsor screen")
	s.Len(created.ResumeCode, 10)
	s.NotEmpty(created.ResumeToken)
	s.NotEqual(created.ResumeCode, created.Session.ResumeCodeHash, "only the hash is persisted")
}

func (s *ServiceSuite) TestCreateSessionBeneficiaryStartsOnItsOwnScreens() {
	created := s.newSession(id.RoleBeneficiary)
	s.Equal("/beneficiary/name", created.Session.Path)
}

func (s *ServiceSuite) TestCreateSessionRejectsUnknownRole() {
	_, err := s.service.CreateSession(context.Background(), id.Role("visitor"))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestResumeSession() {
	created := s.newSession(id.RoleSponsor)
	s.answer(created.Session.ID, "marriageState", "NY")

	sess, err := s.service.ResumeSession(context.Background(), created.ResumeToken, created.ResumeCode)
	s.Require().NoError(err)
	s.Equal(created.Session.ID, sess.ID)
	s.Equal("NY", sess.Answers.String("marriageState"))
}

func (s *ServiceSuite) TestResumeSessionWrongCode() {
	created := s.newSession(id.RoleSponsor)

	_, err := s.service.ResumeSession(context.Background(), created.ResumeToken, "WRONGCODE1")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidResume))
}

func (s *ServiceSuite) TestResumeSessionBadToken() {
	_, err := s.service.ResumeSession(context.Background(), "not-a-token", "ABCDEFGHJK")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidResume))
}

func (s *ServiceSuite) TestResumeSessionDeletedSessionReadsAsBadCredential() {
	created := s.newSession(id.RoleSponsor)
	s.Require().NoError(s.service.DeleteSession(context.Background(), created.Session.ID))

	_, err := s.service.ResumeSession(context.Background(), created.ResumeToken, created.ResumeCode)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidResume), "must not confirm the session ever existed")
}

func (s *ServiceSuite) TestDeleteSession() {
	created := s.newSession(id.RoleSponsor)
	s.Require().NoError(s.service.DeleteSession(context.Background(), created.Session.ID))

	err := s.service.DeleteSession(context.Background(), created.Session.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestSetAnswerUnknownField() {
	created := s.newSession(id.RoleSponsor)
	_, err := s.service.SetAnswer(context.Background(), created.Session.ID, "noSuchField", "x")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnknownField))
}

func (s *ServiceSuite) TestSetAnswerValidation() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	ctx := context.Background()

	tests := []struct {
		name    string
		fieldID string
		value   any
	}{
		{"boolean given string", "metInPerson", "yes"},
		{"date given junk", "sponsorDOB", "15/01/1990"},
		{"select outside options", "sponsorEyeColor", "purple"},
		{"text given number", "sponsorFirstName", float64(7)},
		{"address missing city", "sponsorMailingAddress", map[string]any{
			"street": "12 Main St", "postal_code": "01101", "country": "US", "state": "MA",
		}},
		{"timeline not a list", "sponsorAddressHistory", "everywhere"},
		{"info field answered", "financialStrategy", "direct"},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.service.SetAnswer(ctx, sid, tc.fieldID, tc.value)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidAnswer))
		})
	}
}

func (s *ServiceSuite) TestSetAnswerAcceptsValidAddress() {
	created := s.newSession(id.RoleSponsor)
	sess, err := s.service.SetAnswer(context.Background(), created.Session.ID, "sponsorMailingAddress", map[string]any{
		"street": "12 Main St", "city": "Springfield", "postal_code": "01101",
		"country": "US", "state": "MA",
	})
	s.Require().NoError(err)
	_, ok := sess.Answers.Lookup("sponsorMailingAddress")
	s.True(ok)
}

func (s *ServiceSuite) TestSetAnswerClearsDependentDetails() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "bloodRelated", true)
	s.answer(sid, "bloodRelationship", "first-cousins")

	sess, err := s.service.SetAnswer(context.Background(), sid, "bloodRelated", false)
	s.Require().NoError(err)
	_, ok := sess.Answers.Lookup("bloodRelationship")
	s.False(ok)
}

func (s *ServiceSuite) TestClearAnswer() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	s.answer(sid, "marriageState", "CA")

	sess, err := s.service.ClearAnswer(context.Background(), sid, "marriageState")
	s.Require().NoError(err)
	_, ok := sess.Answers.Lookup("marriageState")
	s.False(ok)
}
