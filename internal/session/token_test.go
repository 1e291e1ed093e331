package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, email, role string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Email: email,
		Role:  role,
	}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspect(t *testing.T) {
	t.Run("decodes identity claims without verification", func(t *testing.T) {
		raw := signedToken(t, "admin@example.com", "super_admin", time.Now().Add(time.Hour))

		claims, err := Inspect(raw)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "super_admin", claims.Role)
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		_, err := Inspect("not-a-jwt")
		assert.ErrorIs(t, err, ErrMalformedToken)
	})
}

func TestExpiry(t *testing.T) {
	now := time.Now()

	t.Run("expired token is reported lapsed", func(t *testing.T) {
		raw := signedToken(t, "a@b.c", "", now.Add(-time.Minute))
		assert.True(t, IsExpired(raw, now))
	})

	t.Run("live token is not lapsed", func(t *testing.T) {
		raw := signedToken(t, "a@b.c", "", now.Add(time.Hour))
		assert.False(t, IsExpired(raw, now))

		exp, ok := ExpiresAt(raw)
		require.True(t, ok)
		assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)
	})

	t.Run("token without expiry is treated as live", func(t *testing.T) {
		raw := signedToken(t, "a@b.c", "", time.Time{})
		assert.False(t, IsExpired(raw, now))

		_, ok := ExpiresAt(raw)
		assert.False(t, ok)
	})
}
