package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the acting identity resolved from a verified session token.
// It is the only identity input downstream services trust; it is never read
// from the request body or query.
type Principal struct {
	AccountID string
	Email     string
}

// SessionGuard validates bearer tokens and attaches the caller's Principal.
type SessionGuard struct {
	tokens *TokenManager
}

// NewSessionGuard constructs the middleware.
func NewSessionGuard(tokens *TokenManager) *SessionGuard {
	return &SessionGuard{tokens: tokens}
}

// Handle enforces authentication for protected routes. Missing, malformed,
// expired and tampered tokens all yield the same unauthenticated failure.
func (g *SessionGuard) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := g.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthenticated("invalid token")
	}

	c.Locals(principalKey, &Principal{AccountID: claims.AccountID, Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
