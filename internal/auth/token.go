package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/roster-service/internal/domain"
)

// TokenManager issues and verifies session tokens. Every session is signed
// with its own random secret; verification requires looking the secret up
// from the session store, so invalidation is a plain row delete.
type TokenManager struct {
	issuer string
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(issuer string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{issuer: issuer, ttl: ttl}
}

// UserClaims is the identity snapshot embedded in every token. It carries no
// credential material.
type UserClaims struct {
	Username        string    `json:"username"`
	Enabled         bool      `json:"enabled"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	FullName        string    `json:"fullName"`
	Role            RoleClaim `json:"role"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Email           string    `json:"email,omitempty"`
}

// RoleClaim mirrors the role attached to the user at sign-in time.
type RoleClaim struct {
	ID   int64           `json:"id"`
	Name domain.RoleName `json:"name"`
}

// Claims describes the signed token payload.
type Claims struct {
	User UserClaims `json:"user"`
	jwt.RegisteredClaims
}

// GenerateSecret returns a fresh random signing secret, never reused across
// sessions.
func GenerateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Issue builds and signs a token for the user with the given per-session
// secret.
func (tm *TokenManager) Issue(user *domain.User, secret string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		User: UserClaims{
			Username:        user.Username,
			Enabled:         user.Enabled,
			FirstName:       user.FirstName,
			LastName:        user.LastName,
			FullName:        user.FullName(),
			Role:            RoleClaim{ID: user.Role.ID, Name: user.Role.Name},
			ProfileImageURL: user.ProfileImageURL,
			Email:           user.EmailAddress,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    tm.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// TTL reports the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Parse verifies signature, issuer and expiry against the session's secret
// and returns the decoded claims. Expired tokens surface jwt.ErrTokenExpired
// in the error chain so callers can trigger lazy session cleanup.
func (tm *TokenManager) Parse(tokenStr, secret string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tm.issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
