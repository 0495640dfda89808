package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/linkarray/link-service/internal/api/dto"
	"github.com/linkarray/link-service/internal/domain"
	"github.com/linkarray/link-service/internal/service"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// AdminHandler exposes the dashboard and account management endpoints.
// Routing gates every method behind the admin role.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.admin.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"message":       "user registrations for the last 30 days",
			"usersCount":    stats.UsersCount,
			"linksCount":    stats.LinksCount,
			"registrations": stats.Registrations,
		},
	})
}

// GetUser handles GET /admin/dashboard/user/:userid.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, links, err := h.admin.GetUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewUserResponse(user, links)},
	})
}

// UpdateUser handles PUT /admin/dashboard/user/:userid.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req dto.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	update := service.UserUpdate{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}

	user, err := h.admin.UpdateUser(c.Context(), userID, update)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewUserResponse(user, nil)},
	})
}

// DeleteUser handles DELETE /admin/dashboard/user/:userid.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, deletedLinks, err := h.admin.DeleteUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"deletedUser":       dto.NewUserResponse(user, nil),
			"deletedLinksCount": deletedLinks,
		},
	})
}

func parseUserID(c *fiber.Ctx) (string, error) {
	raw := c.Params("userid")
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperrors.NewValidationError("invalid user id", map[string]any{"userid": "must be a UUID"})
	}
	return raw, nil
}
