package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/linkarray/link-service/internal/domain"
	"github.com/linkarray/link-service/internal/repository"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// CookieName is the client-side credential cookie carrying the session token.
const CookieName = "token"

const principalKey = "auth_principal"

// Middleware validates session tokens and loads the account they name.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the auth middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. The token's
// subject is resolved against the users table on every request, so a
// deleted account loses access immediately even while its last token
// is still unexpired.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	raw := credentialFromRequest(c)

	userID, err := m.tokens.Verify(raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoToken):
			return apperrors.NewUnauthenticated("login to your account")
		case errors.Is(err, ErrTokenExpired):
			return apperrors.NewTokenExpired("token expired")
		default:
			return apperrors.NewInvalidToken("invalid token")
		}
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthenticated("account no longer exists")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// credentialFromRequest reads the session cookie, falling back to a
// bearer Authorization header.
func credentialFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieName); cookie != "" {
		return cookie
	}
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// UserFromContext retrieves the authenticated account.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
