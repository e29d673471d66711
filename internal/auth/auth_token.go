package auth

import (
	"errors"
	"time"

	autherrors "shift-tracker/internal/auth/errors"
	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultAccessTokenTTL = 12 * time.Hour

// IdentityClaims are the fields read from the identity provider's token.
type IdentityClaims struct {
	Subject string
	Email   string
	Name    string
}

type accessClaims struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

type idpClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies the service's own access tokens and verifies
// identity tokens minted by the upstream provider. Both use HS256.
type TokenManager struct {
	secret    []byte
	idpSecret []byte
	ttl       time.Duration
	clock     clock.Clock
}

func NewTokenManager(secret, idpSecret string, ttl time.Duration, clk clock.Clock) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	if clk == nil {
		clk = clock.New()
	}
	return &TokenManager{
		secret:    []byte(secret),
		idpSecret: []byte(idpSecret),
		ttl:       ttl,
		clock:     clk,
	}
}

func (m *TokenManager) IssueAccessToken(identity domain.Identity) (string, time.Time, error) {
	now := m.clock.Now()
	expiresAt := now.Add(m.ttl)

	claims := accessClaims{
		UserID:         identity.UserID,
		OrganizationID: identity.OrganizationID,
		Role:           identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, autherrors.ErrTokenGenerationFailed
	}
	return token, expiresAt, nil
}

func (m *TokenManager) ParseAccessToken(tokenString string) (domain.Identity, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, m.keyFunc(m.secret), m.parserOptions()...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, autherrors.ErrTokenExpired
		}
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	if claims.UserID == "" || !domain.IsValidRole(claims.Role) {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	return domain.Identity{
		UserID:         claims.UserID,
		OrganizationID: claims.OrganizationID,
		Role:           claims.Role,
	}, nil
}

func (m *TokenManager) ParseIdentityToken(tokenString string) (IdentityClaims, error) {
	var claims idpClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, m.keyFunc(m.idpSecret), m.parserOptions()...)
	if err != nil || claims.Subject == "" {
		return IdentityClaims{}, autherrors.ErrInvalidIdentityToken
	}

	return IdentityClaims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

func (m *TokenManager) keyFunc(key []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return key, nil
	}
}

func (m *TokenManager) parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
	}
}
