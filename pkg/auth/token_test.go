package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Generate("user-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.Generate("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	other := NewTokenService("different", time.Hour)

	token, err := svc.Generate("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	_, err := svc.Parse("not.a.token")
	assert.Error(t, err)
}
