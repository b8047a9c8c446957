// Package secrets generates and verifies resume codes for intake sessions.
package secrets

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "promissa/pkg/domain-errors"
)

// resumeCodeAlphabet avoids ambiguous characters (0/O, 1/I/L) since resume
// codes are read back over the phone by support staff.
const resumeCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const resumeCodeLength = 10

// GenerateResumeCode creates a cryptographically random, human-readable code
// an applicant can use to pick a saved questionnaire back up.
func GenerateResumeCode() (string, error) {
	buf := make([]byte, resumeCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate resume code")
	}
	for i, b := range buf {
		buf[i] = resumeCodeAlphabet[int(b)%len(resumeCodeAlphabet)]
	}
	return string(buf), nil
}

// Hash creates a bcrypt hash of the provided code for storage.
func Hash(code string) (string, error) {
	if code == "" {
		return "", dErrors.New(dErrors.CodeValidation, "resume code cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "resume code is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash resume code")
	}
	return string(hashed), nil
}

// Verify checks if a plaintext code matches a bcrypt hash.
func Verify(code, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeInvalidResume, "invalid resume code")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify resume code")
	}
	return nil
}
