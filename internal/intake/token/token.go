package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

const issuer = "promissa"

// ResumeClaims are the JWT claims carried by a resume token. The token lets
// an applicant reopen their session from another device without an account;
// the session ID is the only authority it confers.
type ResumeClaims struct {
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and validates resume tokens.
type Service struct {
	signingKey []byte
	tokenTTL   time.Duration
}

func NewService(signingKey string, tokenTTL time.Duration) *Service {
	return &Service{signingKey: []byte(signingKey), tokenTTL: tokenTTL}
}

// GenerateResumeToken issues a signed token for the session, valid for the
// configured TTL from now.
func (s *Service) GenerateResumeToken(sessionID id.SessionID, role id.Role, now time.Time) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, ResumeClaims{
		SessionID: sessionID.String(),
		Role:      string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        hex.EncodeToString(b),
		},
	})
	return t.SignedString(s.signingKey)
}

// ValidateResumeToken checks signature, expiry, and issuer, and returns the
// claims. Expired tokens map to the session-expired code so the transport
// layer can tell "come back with a fresh token" apart from "bad token".
func (s *Service) ValidateResumeToken(tokenString string) (*ResumeClaims, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeInvalidResume, "empty resume token")
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &ResumeClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeSessionExpired, "resume token expired")
		}
		return nil, dErrors.New(dErrors.CodeInvalidResume, "invalid resume token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeInvalidResume, "invalid resume token")
	}

	claims, ok := parsed.Claims.(*ResumeClaims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidResume, "invalid resume token claims")
	}
	if claims.Issuer != issuer {
		return nil, dErrors.New(dErrors.CodeInvalidResume, "invalid resume token issuer")
	}
	return claims, nil
}
