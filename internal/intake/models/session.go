package models

import (
	"time"

	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

// Session is one applicant's in-progress questionnaire. Answers and the
// current path evolve together; the store persists the whole aggregate.
type Session struct {
	ID             id.SessionID
	Role           id.Role
	Answers        Answers
	Path           string
	ResumeCodeHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSession creates a Session with domain invariant checks.
func NewSession(sessionID id.SessionID, role id.Role, resumeCodeHash string, now time.Time) (*Session, error) {
	if sessionID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "session ID required")
	}
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid role")
	}
	if resumeCodeHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "resume code hash required")
	}
	if now.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "creation time required")
	}
	return &Session{
		ID:             sessionID,
		Role:           role,
		Answers:        Answers{},
		ResumeCodeHash: resumeCodeHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Touch bumps the modification time.
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

// Clone returns a copy safe to hand across the store boundary.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Answers = s.Answers.Clone()
	return &cp
}
