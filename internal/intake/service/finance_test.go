package service

import (
	"context"

	"promissa/internal/finance"
	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

func (s *ServiceSuite) TestFinanceStateStartsAtRoot() {
	created := s.newSession(id.RoleSponsor)

	view, err := s.service.FinanceState(context.Background(), created.Session.ID)
	s.Require().NoError(err)
	s.Equal(finance.Start(), view.Node)
	s.False(view.Terminal)
	s.Require().NotNil(view.Question)
	s.NotEmpty(view.Question.Options)
}

func (s *ServiceSuite) TestFinanceWalkToEndpoint() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	ctx := context.Background()

	var view *FinanceView
	var err error
	for _, answer := range []string{"employed", "yes", "yes", "yes"} {
		view, err = s.service.FinanceAnswer(ctx, sid, answer)
		s.Require().NoError(err)
	}

	s.True(view.Terminal)
	s.Require().NotNil(view.Endpoint)
	s.Equal(finance.EndpointDirect, view.Node)
	s.NotEmpty(view.Endpoint.Guidance)

	// The position survives a reload.
	view, err = s.service.FinanceState(ctx, sid)
	s.Require().NoError(err)
	s.True(view.Terminal)
}

func (s *ServiceSuite) TestFinanceRejectsInvalidAnswer() {
	created := s.newSession(id.RoleSponsor)

	_, err := s.service.FinanceAnswer(context.Background(), created.Session.ID, "retired-on-mars")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidAnswer))
}

func (s *ServiceSuite) TestFinanceRejectsAnswerPastEndpoint() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	ctx := context.Background()

	for _, answer := range []string{"employed", "yes", "yes", "yes"} {
		_, err := s.service.FinanceAnswer(ctx, sid, answer)
		s.Require().NoError(err)
	}

	_, err := s.service.FinanceAnswer(ctx, sid, "yes")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeTerminalNode))
}

func (s *ServiceSuite) TestFinanceBack() {
	created := s.newSession(id.RoleSponsor)
	sid := created.Session.ID
	ctx := context.Background()

	_, err := s.service.FinanceAnswer(ctx, sid, "employed")
	s.Require().NoError(err)

	view, err := s.service.FinanceBack(ctx, sid)
	s.Require().NoError(err)
	s.Equal(finance.Start(), view.Node)

	_, err = s.service.FinanceBack(ctx, sid)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}
