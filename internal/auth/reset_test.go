package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := NewResetToken("secret", "user-123", time.Hour)
	require.NoError(t, err)

	userID, err := ParseResetToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestResetTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewResetToken("secret", "user-123", time.Hour)
	require.NoError(t, err)

	_, err = ParseResetToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetTokenRejectsExpired(t *testing.T) {
	token, err := NewResetToken("secret", "user-123", -time.Minute)
	require.NoError(t, err)

	_, err = ParseResetToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetTokenRejectsGarbage(t *testing.T) {
	_, err := ParseResetToken("secret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
