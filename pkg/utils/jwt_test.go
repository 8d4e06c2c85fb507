package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	cfg := JWTConfig{Secret: "s3cret", ExpiryHours: 2}
	userID := uuid.New()
	now := time.Now()

	token, expiresAt, err := GenerateToken(cfg, userID, "admin", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(2*time.Hour), expiresAt, time.Second)

	gotID, role, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "admin", role)
}

func TestParseToken_Rejects(t *testing.T) {
	cfg := JWTConfig{Secret: "s3cret", ExpiryHours: 1}
	userID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := GenerateToken(JWTConfig{Secret: "other", ExpiryHours: 1}, userID, "customer", time.Now())
		require.NoError(t, err)

		_, _, err = ParseToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := GenerateToken(cfg, userID, "customer", time.Now().Add(-3*time.Hour))
		require.NoError(t, err)

		_, _, err = ParseToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := ParseToken(cfg, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
