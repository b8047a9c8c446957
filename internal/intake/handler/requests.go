package handler

import (
	"strings"
	"time"

	"promissa/internal/intake/models"
	"promissa/internal/intake/service"
	dErrors "promissa/pkg/domain-errors"
)

// CreateSessionRequest opens a new questionnaire session.
type CreateSessionRequest struct {
	Role string `json:"role"`
}

func (r *CreateSessionRequest) Sanitize() {
	r.Role = strings.TrimSpace(r.Role)
}

func (r *CreateSessionRequest) Normalize() {
	r.Role = strings.ToLower(r.Role)
}

func (r *CreateSessionRequest) Validate() error {
	if r.Role == "" {
		return dErrors.New(dErrors.CodeValidation, "role is required")
	}
	return nil
}

// ResumeSessionRequest reopens a session from its resume credentials.
type ResumeSessionRequest struct {
	ResumeToken string `json:"resume_token"`
	ResumeCode  string `json:"resume_code"`
}

func (r *ResumeSessionRequest) Sanitize() {
	r.ResumeToken = strings.TrimSpace(r.ResumeToken)
	r.ResumeCode = strings.TrimSpace(r.ResumeCode)
}

func (r *ResumeSessionRequest) Normalize() {
	r.ResumeCode = strings.ToUpper(r.ResumeCode)
}

func (r *ResumeSessionRequest) Validate() error {
	if r.ResumeToken == "" {
		return dErrors.New(dErrors.CodeValidation, "resume_token is required")
	}
	if r.ResumeCode == "" {
		return dErrors.New(dErrors.CodeValidation, "resume_code is required")
	}
	return nil
}

// SetAnswerRequest records one answer. Value stays raw; the service layer
// validates it against the field's kind.
type SetAnswerRequest struct {
	Value any `json:"value"`
}

// NavigateRequest moves the session one screen.
type NavigateRequest struct {
	Direction string `json:"direction"`
}

func (r *NavigateRequest) Sanitize() {
	r.Direction = strings.TrimSpace(r.Direction)
}

func (r *NavigateRequest) Normalize() {
	r.Direction = strings.ToLower(r.Direction)
}

func (r *NavigateRequest) Validate() error {
	if r.Direction != "next" && r.Direction != "previous" {
		return dErrors.New(dErrors.CodeValidation, "direction must be next or previous")
	}
	return nil
}

// FinanceAnswerRequest advances the financial decision tree.
type FinanceAnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *FinanceAnswerRequest) Sanitize() {
	r.Answer = strings.TrimSpace(r.Answer)
}

func (r *FinanceAnswerRequest) Validate() error {
	if r.Answer == "" {
		return dErrors.New(dErrors.CodeValidation, "answer is required")
	}
	return nil
}

// CreatedResponse is the one-time session creation payload. The resume code
// appears here and nowhere else.
type CreatedResponse struct {
	SessionID   string `json:"session_id"`
	Role        string `json:"role"`
	Path        string `json:"path"`
	ResumeCode  string `json:"resume_code"`
	ResumeToken string `json:"resume_token"`
}

func newCreatedResponse(created *service.CreatedSession) *CreatedResponse {
	return &CreatedResponse{
		SessionID:   created.Session.ID.String(),
		Role:        string(created.Session.Role),
		Path:        created.Session.Path,
		ResumeCode:  created.ResumeCode,
		ResumeToken: created.ResumeToken,
	}
}

// SessionResponse is the session state returned by answer and resume
// endpoints. The resume code hash never leaves the server.
type SessionResponse struct {
	SessionID string         `json:"session_id"`
	Role      string         `json:"role"`
	Path      string         `json:"path"`
	Answers   map[string]any `json:"answers"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func newSessionResponse(sess *models.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: sess.ID.String(),
		Role:      string(sess.Role),
		Path:      sess.Path,
		Answers:   sess.Answers,
		UpdatedAt: sess.UpdatedAt,
	}
}
