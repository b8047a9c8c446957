package device

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"promissa/pkg/requestcontext"
)

const chromeMacUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestSummarize(t *testing.T) {
	assert.Equal(t, "Unknown Device", Summarize(""))
	assert.Contains(t, Summarize(chromeMacUA), "Chrome")
}

func TestMiddlewareInjectsContext(t *testing.T) {
	var gotUA, gotSummary string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = requestcontext.UserAgent(r.Context())
		gotSummary = requestcontext.DeviceSummary(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", chromeMacUA)
	Middleware(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, chromeMacUA, gotUA)
	assert.NotEmpty(t, gotSummary)
}
