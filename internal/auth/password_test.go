package auth

import (
	"testing"

	"alumnihub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("sturdy-password-1")
	require.NoError(t, err)
	assert.NotEqual(t, "sturdy-password-1", hash)

	assert.True(t, CheckPasswordHash("sturdy-password-1", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("sturdy-password-1")
	require.NoError(t, err)
	second, err := HashPassword("sturdy-password-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"long enough", "sturdy-password-1", true},
		{"exactly eight", "abcdefg1", true},
		{"too short", "short1", false},
		{"empty", "", false},
		{"common word", "password", false},
		{"common word upper case", "PASSWORD", false},
		{"common digits", "12345678", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeWeakPassword, appErr.Code)
		})
	}
}
