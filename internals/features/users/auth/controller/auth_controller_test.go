package controller

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("rahasia-test"))
	require.NoError(t, err)
	return s
}

func TestBlacklistExpiryUsesTokenExpClaim(t *testing.T) {
	now := time.Now()
	// exp jauh lebih pendek dari TTL default — entri blacklist harus ikut exp
	exp := now.Add(30 * time.Minute).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     exp.Unix(),
	})

	got := blacklistExpiry(token, now)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestBlacklistExpiryFallbackWithoutExp(t *testing.T) {
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{"user_id": "u-1"})

	got := blacklistExpiry(token, now)
	assert.Equal(t, now.Add(accessTokenTTL).Unix(), got.Unix())
}

func TestBlacklistExpiryFallbackOnGarbageToken(t *testing.T) {
	now := time.Now()
	got := blacklistExpiry("bukan.token.jwt", now)
	assert.Equal(t, now.Add(accessTokenTTL).Unix(), got.Unix())
}
