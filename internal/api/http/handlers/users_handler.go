package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkarray/link-service/internal/api/dto"
	"github.com/linkarray/link-service/internal/auth"
	"github.com/linkarray/link-service/internal/service"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// UsersHandler exposes profile endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Profile handles GET /users/profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login to your account")
	}

	user, links, err := h.users.Profile(c.Context(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewUserResponse(user, links)},
	})
}

// DeleteAccount handles DELETE /users/profile. The cookie is cleared
// along with the account; any still-circulating token dies with the
// row it points at.
func (h *UsersHandler) DeleteAccount(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login to your account")
	}

	deletedLinks, err := h.users.DeleteAccount(c.Context(), caller.ID)
	if err != nil {
		return err
	}
	c.ClearCookie(auth.CookieName)
	return c.JSON(fiber.Map{
		"data": fiber.Map{"deleted": true, "deletedLinksCount": deletedLinks},
	})
}

// PublicProfile handles GET /users/:username. No authentication; only
// visible links are included.
func (h *UsersHandler) PublicProfile(c *fiber.Ctx) error {
	user, links, err := h.users.PublicProfile(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewPublicUserResponse(user, links)},
	})
}
