package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/middleware"
	"github.com/example/essencia/internal/models"
)

// ProfileHandler manages the session profile, theme and order history.
type ProfileHandler struct{}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// GetProfile returns the session profile with its active theme.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"profile": sess.Profile(),
			"theme":   sess.Theme(),
		},
	})
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

// UpdateProfile updates the provided profile fields; blank fields keep
// their current value.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	profile := sess.Profile()
	updated := false
	if req.Name != "" {
		profile.Name = req.Name
		updated = true
	}
	if req.Email != "" {
		profile.Email = req.Email
		updated = true
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
		updated = true
	}
	if req.Location != "" {
		profile.Location = req.Location
		updated = true
	}
	if !updated {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	sess.SetProfile(profile)
	return c.JSON(fiber.Map{"success": true, "data": profile})
}

// ListOrders returns the session's confirmed orders, newest first.
func (h *ProfileHandler) ListOrders(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	orders := sess.Orders()
	return c.JSON(fiber.Map{"success": true, "data": orders, "count": len(orders)})
}

// ListThemes returns the available palettes.
func (h *ProfileHandler) ListThemes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": models.Themes})
}

type setThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

// SetTheme replaces the session's palette wholesale.
func (h *ProfileHandler) SetTheme(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	var req setThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	theme, found := models.ThemeByID(req.ThemeID)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "theme not found")
	}

	sess.SetTheme(theme)
	return c.JSON(fiber.Map{"success": true, "data": theme})
}
