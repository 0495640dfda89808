package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkarray/link-service/internal/domain"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// RoleAllowed reports whether role is a member of allowed.
func RoleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// RequireRole gates a route to accounts holding one of the allowed
// roles. It must run after Middleware.Handle has resolved the account.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("login to your account")
		}
		if !RoleAllowed(user.Role, allowed) {
			return apperrors.NewForbidden("you do not have access")
		}
		return c.Next()
	}
}
