package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promissa/internal/intake/models"
	"promissa/internal/intake/service"
	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
	"promissa/pkg/platform/httputil"
	"promissa/pkg/requestcontext"
)

// Service defines the interface for questionnaire session operations.
type Service interface {
	CreateSession(ctx context.Context, role id.Role) (*service.CreatedSession, error)
	ResumeSession(ctx context.Context, resumeToken, resumeCode string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID id.SessionID) error
	SetAnswer(ctx context.Context, sessionID id.SessionID, fieldID string, value any) (*models.Session, error)
	ClearAnswer(ctx context.Context, sessionID id.SessionID, fieldID string) (*models.Session, error)
	CurrentScreen(ctx context.Context, sessionID id.SessionID) (*service.ScreenView, error)
	Screen(ctx context.Context, sessionID id.SessionID, path string) (*service.ScreenView, error)
	Navigate(ctx context.Context, sessionID id.SessionID, direction string) (*service.ScreenView, error)
	EvaluateReadiness(ctx context.Context, sessionID id.SessionID) (*service.ReadinessReport, error)
	FinanceState(ctx context.Context, sessionID id.SessionID) (*service.FinanceView, error)
	FinanceAnswer(ctx context.Context, sessionID id.SessionID, answer string) (*service.FinanceView, error)
	FinanceBack(ctx context.Context, sessionID id.SessionID) (*service.FinanceView, error)
}

// Handler handles the questionnaire session endpoints.
type Handler struct {
	logger *slog.Logger
	intake Service
}

// New creates a new intake Handler.
func New(intake Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, intake: intake}
}

// Register registers the intake routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", h.handleCreateSession)
		r.Post("/resume", h.handleResumeSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Delete("/", h.handleDeleteSession)
			r.Put("/answers/{fieldID}", h.handleSetAnswer)
			r.Delete("/answers/{fieldID}", h.handleClearAnswer)
			r.Get("/screens/current", h.handleCurrentScreen)
			r.Get("/screens", h.handleScreenByPath)
			r.Post("/navigate", h.handleNavigate)
			r.Get("/review", h.handleReview)
			r.Get("/finance", h.handleFinanceState)
			r.Post("/finance/answers", h.handleFinanceAnswer)
			r.Post("/finance/back", h.handleFinanceBack)
		})
	})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateSessionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	created, err := h.intake.CreateSession(ctx, id.Role(req.Role))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create session",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, newCreatedResponse(created))
}

func (h *Handler) handleResumeSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ResumeSessionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sess, err := h.intake.ResumeSession(ctx, req.ResumeToken, req.ResumeCode)
	if err != nil {
		h.logger.WarnContext(ctx, "resume rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.intake.DeleteSession(ctx, sessionID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSetAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	fieldID := chi.URLParam(r, "fieldID")

	req, ok := httputil.DecodeJSON[SetAnswerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sess, err := h.intake.SetAnswer(ctx, sessionID, fieldID, req.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "answer rejected",
			"request_id", requestID,
			"field_id", fieldID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (h *Handler) handleClearAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	fieldID := chi.URLParam(r, "fieldID")

	sess, err := h.intake.ClearAnswer(ctx, sessionID, fieldID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (h *Handler) handleCurrentScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.intake.CurrentScreen(ctx, sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleScreenByPath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "path query parameter is required"))
		return
	}

	view, err := h.intake.Screen(ctx, sessionID, path)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[NavigateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	view, err := h.intake.Navigate(ctx, sessionID, req.Direction)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	report, err := h.intake.EvaluateReadiness(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "readiness evaluation failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleFinanceState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.intake.FinanceState(ctx, sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleFinanceAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[FinanceAnswerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	view, err := h.intake.FinanceAnswer(ctx, sessionID, req.Answer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleFinanceBack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.intake.FinanceBack(ctx, sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// sessionID parses the path parameter, writing the error response itself on
// failure.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (id.SessionID, bool) {
	raw := chi.URLParam(r, "sessionID")
	sessionID, err := id.ParseSessionID(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid session id"))
		return id.SessionID{}, false
	}
	return sessionID, true
}
