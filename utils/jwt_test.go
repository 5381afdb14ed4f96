package utils

import (
	"testing"
	"time"

	"doctorsportal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "a@x.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "a@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "a@x.com", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}
