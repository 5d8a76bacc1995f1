package tests

import (
	"testing"
	"time"

	"github.com/gmwtech/corporate-site/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) services.TokenService {
	t.Helper()
	svc, err := services.NewTokenService(1*time.Hour, 24*time.Hour, "test-issuer", "test-audience", secret)
	require.NoError(t, err)
	return svc
}

func TestTokenService(t *testing.T) {
	svc := newTestTokenService(t, testJWTSecret)

	t.Run("RejectsEmptySecret", func(t *testing.T) {
		_, err := services.NewTokenService(1*time.Hour, 24*time.Hour, "test-issuer", "test-audience", "")
		assert.Error(t, err)
	})

	t.Run("GenerateAndValidate", func(t *testing.T) {
		accessToken, refreshToken, err := svc.GenerateTokens(42, true)
		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.NotEqual(t, accessToken, refreshToken)

		accessClaims, err := svc.ValidateToken(accessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), accessClaims.UserID)
		assert.True(t, accessClaims.IsAdmin)
		assert.Equal(t, "access", accessClaims.TokenType)
		assert.NotEmpty(t, accessClaims.TokenID)
		assert.True(t, accessClaims.ExpiresAt.After(accessClaims.IssuedAt))

		refreshClaims, err := svc.ValidateToken(refreshToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), refreshClaims.UserID)
		assert.Equal(t, "refresh", refreshClaims.TokenType)
		assert.NotEqual(t, accessClaims.TokenID, refreshClaims.TokenID)
	})

	t.Run("RejectsGarbageToken", func(t *testing.T) {
		claims, err := svc.ValidateToken("not.a.token")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, services.ErrTokenInvalid)
	})

	t.Run("RejectsTamperedToken", func(t *testing.T) {
		accessToken, _, err := svc.GenerateTokens(7, false)
		require.NoError(t, err)

		tampered := accessToken[:len(accessToken)-4] + "XXXX"
		claims, err := svc.ValidateToken(tampered)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, services.ErrTokenInvalid)
	})

	t.Run("RejectsTokenFromDifferentSecret", func(t *testing.T) {
		other := newTestTokenService(t, "another-secret-key-for-cross-validation-tests")

		accessToken, _, err := other.GenerateTokens(7, false)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(accessToken)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, services.ErrTokenInvalid)
	})

	t.Run("RejectsExpiredToken", func(t *testing.T) {
		// Negative TTL makes the issued access token already past exp
		expired, err := services.NewTokenService(-1*time.Minute, 24*time.Hour, "test-issuer", "test-audience", testJWTSecret)
		require.NoError(t, err)

		accessToken, _, err := expired.GenerateTokens(7, false)
		require.NoError(t, err)

		claims, err := expired.ValidateToken(accessToken)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, services.ErrTokenExpired)
	})

	t.Run("RefreshIssuesNewTokens", func(t *testing.T) {
		_, refreshToken, err := svc.GenerateTokens(42, false)
		require.NoError(t, err)

		newAccess, newRefresh, err := svc.RefreshToken(refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.NotEqual(t, refreshToken, newRefresh)

		claims, err := svc.ValidateToken(newAccess)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("RefreshRejectsAccessToken", func(t *testing.T) {
		accessToken, _, err := svc.GenerateTokens(42, false)
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(accessToken)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a refresh token")
	})
}
