// Package device summarizes the client device from the User-Agent header so
// session telemetry can record what applicants fill the questionnaire on.
package device

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"promissa/pkg/requestcontext"
)

// Middleware stores the raw User-Agent and a human-readable device summary in
// the request context. Register before any handler that records telemetry.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		ctx := requestcontext.WithUserAgent(r.Context(), ua)
		ctx = requestcontext.WithDeviceSummary(ctx, Summarize(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Summarize extracts a human-readable device display name from a User-Agent
// string. Returns format: "Browser on OS" (e.g. "Chrome on macOS").
func Summarize(userAgentString string) string {
	if userAgentString == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgentString)

	browser, _ := ua.Browser()
	os := ua.OS()

	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}

	return strings.TrimSpace(browser + " on " + os)
}
