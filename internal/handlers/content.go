package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/catalog"
)

// ContentHandler serves the static marketing pages: home, about, contact
// details.
type ContentHandler struct {
	catalog *catalog.Catalog
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(cat *catalog.Catalog) *ContentHandler {
	return &ContentHandler{catalog: cat}
}

const (
	heroTitle    = "ESSENCIA"
	heroTagline  = "Where Luxury Meets Essence"
	heroSubtitle = "Discover our collection of handcrafted fragrances, where every bottle tells a story of elegance and sophistication."

	aboutHeadline = "The Art of Fragrance"
	aboutStory    = "Founded on the belief that scent is the most intimate form of luxury, ESSENCIA blends rare ingredients from around the world into fragrances that linger in memory. Each composition is developed over months by our master perfumers and bottled by hand in small batches."
	aboutCraft    = "From the first sketch of a scent profile to the final marble-finished flacon, every step honors traditional perfumery while embracing modern artistry."

	contactAddress      = "12 Marble Row, New York, NY 10001"
	contactPhone        = "+1 (212) 555-0184"
	contactEmail        = "hello@essencia.example.com"
	contactWorkingHours = "Mon - Sat: 10:00 - 19:00"
)

// Home returns the hero copy and the highest-rated featured products.
func (h *ContentHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"title":    heroTitle,
			"tagline":  heroTagline,
			"subtitle": heroSubtitle,
			"featured": h.catalog.Featured(3),
		},
	})
}

// About returns the brand story copy.
func (h *ContentHandler) About(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"headline": aboutHeadline,
			"story":    aboutStory,
			"craft":    aboutCraft,
		},
	})
}

// Contact returns the boutique contact details shown on the contact page.
func (h *ContentHandler) Contact(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"address":       contactAddress,
			"phone":         contactPhone,
			"email":         contactEmail,
			"working_hours": contactWorkingHours,
		},
	})
}
