package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	Environment    string
	JWTSigningKey  string
	ResumeTokenTTL time.Duration
}

// DefaultResumeTokenTTL bounds how long an abandoned session can be picked
// back up with a resume token.
var DefaultResumeTokenTTL = 30 * 24 * time.Hour

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PROMISSA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	environment := os.Getenv("PROMISSA_ENV")
	if environment == "" {
		environment = "development"
	}

	resumeTTL := DefaultResumeTokenTTL
	if s := os.Getenv("RESUME_TOKEN_TTL"); s != "" {
		if duration, err := time.ParseDuration(s); err == nil {
			resumeTTL = duration
		}
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:           addr,
		Environment:    environment,
		JWTSigningKey:  jwtSigningKey,
		ResumeTokenTTL: resumeTTL,
	}
}
