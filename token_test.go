package main

import (
	"testing"
	"time"

	"github.com/sabbir-mahmud/expense-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenApp(secret string, ttl time.Duration) *App {
	return newApp(Config{JWTSecret: []byte(secret), TokenTTL: ttl}, nil)
}

func TestTokenRoundTrip(t *testing.T) {
	app := tokenApp("test-secret", time.Hour)
	user := models.NewUser("sam@example.com", []byte("hash"))

	signed, err := app.issueToken(user)
	require.NoError(t, err)

	claims, err := app.verifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestTokenRejections(t *testing.T) {
	app := tokenApp("test-secret", time.Hour)
	user := models.NewUser("sam@example.com", []byte("hash"))

	_, err := app.verifyToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	signed, err := app.issueToken(user)
	require.NoError(t, err)
	_, err = app.verifyToken(signed + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	forged, err := tokenApp("other-secret", time.Hour).issueToken(user)
	require.NoError(t, err)
	_, err = app.verifyToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// expired tokens fail the same way as malformed ones
	expired, err := tokenApp("test-secret", -time.Hour).issueToken(user)
	require.NoError(t, err)
	_, err = app.verifyToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
