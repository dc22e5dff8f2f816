package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is the fixed audience tag carried by every product.
type Category string

const (
	CategoryMen     Category = "men"
	CategoryWomen   Category = "women"
	CategoryUnisex  Category = "unisex"
	CategoryLimited Category = "limited"

	// CategoryAll is not a product category; it is the catalog filter
	// value that matches every product.
	CategoryAll Category = "all"
)

// ParseCategory validates a category filter value coming from a client.
func ParseCategory(value string) (Category, error) {
	switch c := Category(value); c {
	case CategoryMen, CategoryWomen, CategoryUnisex, CategoryLimited, CategoryAll:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// FragranceNotes holds the three ordered note tiers of a perfume.
type FragranceNotes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// Product is an immutable catalog record. Products are seeded once at
// startup and never created, mutated, or deleted at runtime.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Notes       FragranceNotes  `json:"notes"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
}
