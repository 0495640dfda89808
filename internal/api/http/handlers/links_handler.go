package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linkarray/link-service/internal/api/dto"
	"github.com/linkarray/link-service/internal/auth"
	"github.com/linkarray/link-service/internal/service"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// LinksHandler exposes link CRUD for the authenticated account.
type LinksHandler struct {
	links *service.LinkService
}

// NewLinksHandler constructs handler.
func NewLinksHandler(linkService *service.LinkService) *LinksHandler {
	return &LinksHandler{links: linkService}
}

// Create handles POST /links.
func (h *LinksHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login to your account")
	}

	var req dto.CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	link, err := h.links.Add(c.Context(), user.ID, req.Title, req.URL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"link": dto.NewLinkResponse(*link)},
	})
}

// List handles GET /links.
func (h *LinksHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login to your account")
	}

	links, err := h.links.List(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"links": dto.NewLinkResponses(links)},
	})
}

// Update handles PUT /links/:linkId.
func (h *LinksHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login to your account")
	}

	var req dto.UpdateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	link, err := h.links.Update(c.Context(), user.ID, c.Params("linkId"), service.LinkUpdate{
		Title:     req.Title,
		URL:       req.URL,
		IsVisible: req.IsVisible,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"link": dto.NewLinkResponse(*link)},
	})
}

// Delete handles DELETE /links/:linkId.
func (h *LinksHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login to your account")
	}

	if err := h.links.Delete(c.Context(), user.ID, c.Params("linkId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"deleted": true},
	})
}
