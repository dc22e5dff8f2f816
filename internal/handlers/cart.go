package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/catalog"
	"github.com/example/essencia/internal/middleware"
)

// CartHandler manages the session cart's line items.
type CartHandler struct {
	catalog *catalog.Catalog
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(cat *catalog.Catalog) *CartHandler {
	return &CartHandler{catalog: cat}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the cart lines, derived totals and checkout step.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	return c.JSON(fiber.Map{"success": true, "data": sess.CartView()})
}

// AddItem adds one unit of the requested product; repeated adds merge into
// a single line.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, found := h.catalog.Get(req.ProductID)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	view := sess.AddToCart(product)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": view})
}

// UpdateItem sets a line's quantity. Zero removes the line; negative
// quantities are rejected.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	var req updateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must not be negative")
	}

	view := sess.UpdateQuantity(c.Params("id"), req.Quantity)
	return c.JSON(fiber.Map{"success": true, "data": view})
}

// RemoveItem deletes a line. Removing an absent line is a no-op.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	view := sess.RemoveFromCart(c.Params("id"))
	return c.JSON(fiber.Map{"success": true, "data": view})
}
