package auth_test

import (
	"testing"
	"time"

	"shift-tracker/internal/auth"
	autherrors "shift-tracker/internal/auth/errors"
	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "access-secret"
	testIdPSecret = "idp-secret"
)

var testNow = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

func mintIdentityToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	m := auth.NewTokenManager(testSecret, testIdPSecret, time.Hour, clock.Fixed(testNow))
	identity := domain.Identity{UserID: "u-1", OrganizationID: "o-1", Role: domain.RoleManager}

	token, expiresAt, err := m.IssueAccessToken(identity)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour), expiresAt)

	parsed, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestTokenManager_ParseAccessToken(t *testing.T) {
	issuer := auth.NewTokenManager(testSecret, testIdPSecret, time.Hour, clock.Fixed(testNow))
	token, _, err := issuer.IssueAccessToken(domain.Identity{UserID: "u-1", OrganizationID: "o-1", Role: domain.RoleCareWorker})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := auth.NewTokenManager(testSecret, testIdPSecret, time.Hour, clock.Fixed(testNow.Add(2*time.Hour)))
		_, err := later.ParseAccessToken(token)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewTokenManager("other", testIdPSecret, time.Hour, clock.Fixed(testNow))
		_, err := other.ParseAccessToken(token)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ParseAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		forged := mintIdentityToken(t, testSecret, jwt.MapClaims{
			"user_id": "u-1",
			"role":    "ADMIN",
			"exp":     testNow.Add(time.Hour).Unix(),
		})
		_, err := issuer.ParseAccessToken(forged)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestTokenManager_ParseIdentityToken(t *testing.T) {
	m := auth.NewTokenManager(testSecret, testIdPSecret, time.Hour, clock.Fixed(testNow))

	t.Run("valid", func(t *testing.T) {
		token := mintIdentityToken(t, testIdPSecret, jwt.MapClaims{
			"sub":   "idp|42",
			"email": "ada@example.org",
			"name":  "Ada",
			"exp":   testNow.Add(time.Minute).Unix(),
		})

		claims, err := m.ParseIdentityToken(token)
		require.NoError(t, err)
		assert.Equal(t, auth.IdentityClaims{Subject: "idp|42", Email: "ada@example.org", Name: "Ada"}, claims)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := mintIdentityToken(t, testIdPSecret, jwt.MapClaims{"email": "ada@example.org"})
		_, err := m.ParseIdentityToken(token)
		assert.ErrorIs(t, err, autherrors.ErrInvalidIdentityToken)
	})

	t.Run("signed with access secret", func(t *testing.T) {
		token := mintIdentityToken(t, testSecret, jwt.MapClaims{"sub": "idp|42"})
		_, err := m.ParseIdentityToken(token)
		assert.ErrorIs(t, err, autherrors.ErrInvalidIdentityToken)
	})
}
