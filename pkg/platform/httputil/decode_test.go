package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "promissa/pkg/domain-errors"
)

type setAnswerBody struct {
	Value any `json:"value"`
}

type preparedBody struct {
	Key       string `json:"key"`
	sanitized bool
}

func (r *preparedBody) Sanitize() { r.sanitized = true }

func (r *preparedBody) Validate() error {
	if r.Key == "" {
		return dErrors.New(dErrors.CodeUnknownField, "key is required")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body decodes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"value":"Doe"}`))
		w := httptest.NewRecorder()

		req, ok := DecodeJSON[setAnswerBody](w, r, discardLogger(), context.Background(), "req-1")
		require.True(t, ok)
		assert.Equal(t, "Doe", req.Value)
	})

	t.Run("malformed body writes bad request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"value":`))
		w := httptest.NewRecorder()

		_, ok := DecodeJSON[setAnswerBody](w, r, discardLogger(), context.Background(), "req-1")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("runs sanitize and validate", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"key":"sponsorDOB"}`))
		w := httptest.NewRecorder()

		req, ok := DecodeAndPrepare[preparedBody](w, r, discardLogger(), context.Background(), "req-1")
		require.True(t, ok)
		assert.True(t, req.sanitized)
	})

	t.Run("domain error code survives to response", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"key":""}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[preparedBody](w, r, discardLogger(), context.Background(), "req-1")
		require.False(t, ok)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, string(dErrors.CodeUnknownField), body["error"])
	})
}

func TestWriteError(t *testing.T) {
	t.Run("non-domain error falls back to 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("session expired maps to 410", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeSessionExpired, "session expired"))
		assert.Equal(t, http.StatusGone, w.Code)
	})
}
