package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"promissa/internal/intake/service"
	"promissa/internal/intake/store/session"
	"promissa/internal/intake/token"
	"promissa/internal/sequence"
	dErrors "promissa/pkg/domain-errors"
)

// HandlerSuite drives the intake routes end to end over httptest with the
// real service and the in-memory store behind them.
type HandlerSuite struct {
	suite.Suite
	router chi.Router
}

func (s *HandlerSuite) SetupTest() {
	catalog, err := sequence.Load()
	s.Require().NoError(err)

	store := session.New()
	tokens := token.NewService("test-signing-key", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	evalDate := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc := service.NewService(store, catalog, tokens, logger,
		service.WithClock(func() time.Time { return evalDate }),
	)

	s.router = chi.NewRouter()
	New(svc, logger).Register(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) decode(w *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), target))
}

func (s *HandlerSuite) createSession(role string) *CreatedResponse {
	w := s.do(http.MethodPost, "/v1/sessions", CreateSessionRequest{Role: role})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created CreatedResponse
	s.decode(w, &created)
	return &created
}

func (s *HandlerSuite) assertError(w *httptest.ResponseRecorder, status int, code dErrors.Code) {
	s.Require().Equal(status, w.Code, w.Body.String())
	var body map[string]string
	s.decode(w, &body)
	s.Equal(string(code), body["error"])
}

func (s *HandlerSuite) TestCreateSession() {
	created := s.createSession("sponsor")
	s.NotEmpty(created.SessionID)
	s.Equal("sponsor", created.Role)
	s.Equal("/sponsor/name", created.Path)
	s.Len(created.ResumeCode, 10)
	s.NotEmpty(created.ResumeToken)
}

func (s *HandlerSuite) TestCreateSessionValidation() {
	w := s.do(http.MethodPost, "/v1/sessions", CreateSessionRequest{Role: ""})
	s.assertError(w, http.StatusBadRequest, dErrors.CodeValidation)

	w = s.do(http.MethodPost, "/v1/sessions", CreateSessionRequest{Role: "visitor"})
	s.assertError(w, http.StatusBadRequest, dErrors.CodeInvalidInput)
}

func (s *HandlerSuite) TestResumeFlow() {
	created := s.createSession("sponsor")

	w := s.do(http.MethodPost, "/v1/sessions/resume", ResumeSessionRequest{
		ResumeToken: created.ResumeToken,
		ResumeCode:  created.ResumeCode,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var sess SessionResponse
	s.decode(w, &sess)
	s.Equal(created.SessionID, sess.SessionID)
}

func (s *HandlerSuite) TestResumeRejectsBadCode() {
	created := s.createSession("sponsor")

	w := s.do(http.MethodPost, "/v1/sessions/resume", ResumeSessionRequest{
		ResumeToken: created.ResumeToken,
		ResumeCode:  "WRONGCODE1",
	})
	s.assertError(w, http.StatusUnauthorized, dErrors.CodeInvalidResume)
}

func (s *HandlerSuite) TestSetAnswerAndScreens() {
	created := s.createSession("sponsor")
	base := "/v1/sessions/" + created.SessionID

	w := s.do(http.MethodPut, base+"/answers/sponsorFirstName", SetAnswerRequest{Value: "Alex"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPut, base+"/answers/sponsorLastName", SetAnswerRequest{Value: "Rivera"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, base+"/screens/current", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var view service.ScreenView
	s.decode(w, &view)
	s.Equal("/sponsor/name", view.Screen.Path)
	s.True(view.CanAdvance)

	w = s.do(http.MethodPost, base+"/navigate", NavigateRequest{Direction: "next"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &view)
	s.Equal("/sponsor/birth", view.Screen.Path)
}

func (s *HandlerSuite) TestSetAnswerErrorMapping() {
	created := s.createSession("sponsor")
	base := "/v1/sessions/" + created.SessionID

	w := s.do(http.MethodPut, base+"/answers/noSuchField", SetAnswerRequest{Value: "x"})
	s.assertError(w, http.StatusNotFound, dErrors.CodeUnknownField)

	w = s.do(http.MethodPut, base+"/answers/metInPerson", SetAnswerRequest{Value: "yes"})
	s.assertError(w, http.StatusBadRequest, dErrors.CodeInvalidAnswer)
}

func (s *HandlerSuite) TestNavigateBlockedScreen() {
	created := s.createSession("sponsor")
	base := "/v1/sessions/" + created.SessionID

	w := s.do(http.MethodPost, base+"/navigate", NavigateRequest{Direction: "next"})
	s.assertError(w, http.StatusBadRequest, dErrors.CodeValidation)
}

func (s *HandlerSuite) TestScreenByPathRequiresParam() {
	created := s.createSession("sponsor")
	base := "/v1/sessions/" + created.SessionID

	w := s.do(http.MethodGet, base+"/screens", nil)
	s.assertError(w, http.StatusBadRequest, dErrors.CodeBadRequest)

	w = s.do(http.MethodGet, base+"/screens?path=/relationship/basis", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlerSuite) TestReview() {
	created := s.createSession("sponsor")
	base := "/v1/sessions/" + created.SessionID

	w := s.do(http.MethodGet, base+"/review", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var report service.ReadinessReport
	s.decode(w, &report)
	s.False(report.Ready)
	s.Equal(created.SessionID, report.SessionID)
}

func (s *HandlerSuite) TestFinanceFlow() {
	created := s.createSession("sponsor")
	base := "/v1/sessions/" + created.SessionID

	w := s.do(http.MethodGet, base+"/finance", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var view service.FinanceView
	s.decode(w, &view)
	s.False(view.Terminal)
	s.NotNil(view.Question)

	for _, answer := range []string{"employed", "yes", "yes", "yes"} {
		w = s.do(http.MethodPost, base+"/finance/answers", FinanceAnswerRequest{Answer: answer})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}
	s.decode(w, &view)
	s.True(view.Terminal)

	// Past an endpoint there is nothing left to answer.
	w = s.do(http.MethodPost, base+"/finance/answers", FinanceAnswerRequest{Answer: "yes"})
	s.assertError(w, http.StatusConflict, dErrors.CodeTerminalNode)

	w = s.do(http.MethodPost, base+"/finance/back", nil)
	s.Require().Equal(http.StatusOK, w.Code)
}

func (s *HandlerSuite) TestSessionNotFound() {
	w := s.do(http.MethodGet, "/v1/sessions/550e8400-e29b-41d4-a716-446655440000/screens/current", nil)
	s.assertError(w, http.StatusNotFound, dErrors.CodeNotFound)
}

func (s *HandlerSuite) TestBadSessionID() {
	w := s.do(http.MethodGet, "/v1/sessions/not-a-uuid/screens/current", nil)
	s.assertError(w, http.StatusBadRequest, dErrors.CodeBadRequest)
}

func (s *HandlerSuite) TestDeleteSession() {
	created := s.createSession("beneficiary")
	base := "/v1/sessions/" + created.SessionID

	w := s.do(http.MethodDelete, base+"/", nil)
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, base+"/screens/current", nil)
	s.assertError(w, http.StatusNotFound, dErrors.CodeNotFound)
}
