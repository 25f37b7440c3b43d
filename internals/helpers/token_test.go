package helper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	tok, err := GenerateRefreshToken("rahasia-refresh", userID, time.Hour)
	require.NoError(t, err)

	parsed, err := ParseRefreshToken("rahasia-refresh", tok)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestRefreshToken_WrongSecretRejected(t *testing.T) {
	tok, err := GenerateRefreshToken("rahasia-refresh", uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = ParseRefreshToken("secret-lain", tok)
	assert.Error(t, err)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	// access token tidak punya claim token_type=refresh → tidak boleh
	// dipakai untuk minta access token baru
	tok, err := GenerateAccessToken("rahasia-refresh", uuid.New(), false, time.Hour)
	require.NoError(t, err)

	_, err = ParseRefreshToken("rahasia-refresh", tok)
	assert.Error(t, err)
}

func TestRefreshToken_ExpiredRejected(t *testing.T) {
	tok, err := GenerateRefreshToken("rahasia-refresh", uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseRefreshToken("rahasia-refresh", tok)
	assert.Error(t, err)
}
