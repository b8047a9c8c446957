// Package domain provides type-safe identifiers and calendar helpers shared
// across the intake service.
package domain

import (
	"github.com/google/uuid"

	dErrors "promissa/pkg/domain-errors"
)

// SessionID identifies a single questionnaire session. A distinct type keeps
// the compiler from accepting arbitrary strings or UUIDs at session boundaries.
type SessionID uuid.UUID

// NewSessionID generates a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.New())
}

// ParseSessionID validates an identifier at trust boundaries (handlers, API inputs).
//
// Nil UUIDs are allowed here; use IsNil() at the service layer for business
// validation, which lets store lookups return proper "not found" errors.
func ParseSessionID(s string) (SessionID, error) {
	if s == "" {
		return SessionID{}, dErrors.New(dErrors.CodeInvalidInput, "session ID cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return SessionID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid session ID format")
	}
	return SessionID(id), nil
}

func (id SessionID) String() string { return uuid.UUID(id).String() }

func (id SessionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
