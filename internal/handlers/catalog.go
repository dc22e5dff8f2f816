package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/catalog"
	"github.com/example/essencia/internal/models"
	"github.com/example/essencia/internal/utils"
)

// CatalogHandler serves the product catalog and its query pipeline.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListProducts runs the catalog query for the search/category/sort params
// and returns the matching page plus the full result count.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	category, err := models.ParseCategory(c.Query("category", string(models.CategoryAll)))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category")
	}

	results := h.catalog.Query(
		c.Query("search"),
		category,
		catalog.SortKey(c.Query("sort", string(catalog.SortName))),
	)

	pg := utils.ParsePagination(c)
	start, end := pg.Window(len(results))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results[start:end],
		"count":   len(results),
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    len(results),
		},
	})
}

// GetProduct returns one product with its same-category companions.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, ok := h.catalog.Get(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
		"related": h.catalog.Related(product, 4),
	})
}
