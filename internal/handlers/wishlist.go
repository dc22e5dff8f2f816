package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/catalog"
	"github.com/example/essencia/internal/middleware"
)

// WishlistHandler manages the session wishlist.
type WishlistHandler struct {
	catalog *catalog.Catalog
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(cat *catalog.Catalog) *WishlistHandler {
	return &WishlistHandler{catalog: cat}
}

// ListWishlist returns the wishlisted products in insertion order.
func (h *WishlistHandler) ListWishlist(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	items := sess.Wishlist()
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// ToggleWishlist flips membership for a product: adding an already-present
// product removes it.
func (h *WishlistHandler) ToggleWishlist(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	product, found := h.catalog.Get(c.Params("productId"))
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	added := sess.ToggleWishlist(product)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"product_id":  product.ID,
			"in_wishlist": added,
		},
	})
}
