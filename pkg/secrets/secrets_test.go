package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "promissa/pkg/domain-errors"
)

func TestGenerateResumeCode(t *testing.T) {
	code, err := GenerateResumeCode()
	require.NoError(t, err)
	assert.Len(t, code, resumeCodeLength)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(resumeCodeAlphabet, r),
			"code contains character outside alphabet: %q", r)
	}

	other, err := GenerateResumeCode()
	require.NoError(t, err)
	assert.NotEqual(t, code, other, "two generated codes should differ")
}

func TestHashAndVerify(t *testing.T) {
	code, err := GenerateResumeCode()
	require.NoError(t, err)

	hash, err := Hash(code)
	require.NoError(t, err)
	assert.NotEqual(t, code, hash)

	assert.NoError(t, Verify(code, hash))

	err = Verify("WRONGCODE1", hash)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResume))
}

func TestHashEmptyCode(t *testing.T) {
	_, err := Hash("")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
