package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/models"
	"github.com/example/essencia/internal/services"
)

// ContactHandler accepts contact-form submissions.
type ContactHandler struct {
	contact *services.ContactService
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact validates the form and accepts it after the simulated
// delivery delay. Validation failures return the per-field messages.
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if errs := h.contact.Validate(msg); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}

	received := h.contact.Submit(msg)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": received})
}
