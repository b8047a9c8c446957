package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"promissa/internal/intake/metrics"
	"promissa/internal/intake/models"
	"promissa/internal/intake/token"
	"promissa/internal/sentinel"
	"promissa/internal/sequence"
	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
	"promissa/pkg/secrets"
)

// Store defines the persistence interface for questionnaire sessions.
// Error Contract:
// - FindByID returns sentinel.ErrNotFound when no session exists
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	Save(ctx context.Context, sess *models.Session) error
	FindByID(ctx context.Context, sessionID id.SessionID) (*models.Session, error)
	Update(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, sessionID id.SessionID) error
}

type Option func(*Service)

// Service owns the questionnaire session lifecycle: creation, resumption,
// answer recording, navigation, and the readiness review.
type Service struct {
	store     Store
	catalog   *sequence.Catalog
	sequencer *sequence.Sequencer
	tokens    *token.Service
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	now       func() time.Time
}

func NewService(store Store, catalog *sequence.Catalog, tokens *token.Service, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:     store,
		catalog:   catalog,
		sequencer: sequence.New(catalog),
		tokens:    tokens,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer("promissa/intake")
	}
	return svc
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the logger instance for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source. Tests pin evaluation dates with it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTracer injects a pre-configured tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// CreatedSession is the one-time creation result. ResumeCode is shown to the
// applicant exactly once; only its hash is persisted.
type CreatedSession struct {
	Session     *models.Session
	ResumeCode  string
	ResumeToken string
}

// CreateSession opens a fresh session for the role, positioned on the first
// screen, and issues the resume credentials.
func (s *Service) CreateSession(ctx context.Context, role id.Role) (*CreatedSession, error) {
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "role must be sponsor or beneficiary")
	}

	code, err := secrets.GenerateResumeCode()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate resume code")
	}
	hash, err := secrets.Hash(code)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash resume code")
	}

	now := s.now()
	sess, err := models.NewSession(id.NewSessionID(), role, hash, now)
	if err != nil {
		return nil, err
	}

	screens := s.sequencer.Screens(role, sess.Answers)
	if len(screens) == 0 {
		return nil, dErrors.New(dErrors.CodeInternal, "no screens applicable for role")
	}
	sess.Path = screens[0].Path

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist session")
	}

	resumeToken, err := s.tokens.GenerateResumeToken(sess.ID, role, now)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue resume token")
	}

	if s.metrics != nil {
		s.metrics.IncrementSessionsCreated(string(role))
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "session created",
			"session_id", sess.ID.String(),
			"role", string(role),
		)
	}

	return &CreatedSession{Session: sess, ResumeCode: code, ResumeToken: resumeToken}, nil
}

// ResumeSession reopens a session from its resume token and code. Both parts
// are required: the token locates the session, the code proves possession.
func (s *Service) ResumeSession(ctx context.Context, resumeToken, resumeCode string) (*models.Session, error) {
	claims, err := s.tokens.ValidateResumeToken(resumeToken)
	if err != nil {
		return nil, err
	}
	sessionID, err := id.ParseSessionID(claims.SessionID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInvalidResume, "invalid resume token")
	}

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		// A valid token for a purged session reads as a bad credential, not
		// as confirmation the session once existed.
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeInvalidResume, "invalid resume credentials")
		}
		return nil, err
	}

	if err := secrets.Verify(resumeCode, sess.ResumeCodeHash); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementSessionsResumed()
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "session resumed", "session_id", sess.ID.String())
	}
	return sess, nil
}

// DeleteSession discards a session and everything in it.
func (s *Service) DeleteSession(ctx context.Context, sessionID id.SessionID) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "session not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete session")
	}
	return nil
}

func (s *Service) loadSession(ctx context.Context, sessionID id.SessionID) (*models.Session, error) {
	sess, err := s.store.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "session not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return sess, nil
}
