package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is applied when no explicit token lifetime is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// ErrInvalidToken is the single failure surfaced for any bad token.
// Expired, tampered and malformed tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenManager issues and verifies signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager bound to the given signing secret.
// The secret is injected, never read from ambient state, so tests can run
// with per-test secrets. A zero ttl falls back to DefaultSessionTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the session token payload.
type Claims struct {
	AccountID string `json:"uid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Issue builds and signs a session token for the account.
func (tm *TokenManager) Issue(accountID, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify validates the token and returns its claims. Every failure mode
// collapses to ErrInvalidToken.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
