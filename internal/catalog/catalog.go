package catalog

import (
	"fmt"
	"strconv"

	"github.com/example/essencia/internal/models"
)

// Catalog is the static, ordered product collection established at process
// start. It is never mutated afterwards and is safe for concurrent reads.
//
// Catalog invariant: every product ID is a decimal integer string. The
// "newest" sort orders by the numeric value of the ID, so seeding rejects
// identifiers that do not parse.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
	recency  map[string]int
}

// New builds a catalog from an ordered product list, validating the ID
// invariants.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]models.Product, len(products)),
		recency:  make(map[string]int, len(products)),
	}
	copy(c.products, products)

	for _, p := range c.products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		n, err := strconv.Atoi(p.ID)
		if err != nil {
			return nil, fmt.Errorf("product id %q is not numeric", p.ID)
		}
		c.byID[p.ID] = p
		c.recency[p.ID] = n
	}

	return c, nil
}

// All returns the catalog in its seeded order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by identifier.
func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Related returns up to limit other products sharing p's category, in
// catalog order.
func (c *Catalog) Related(p models.Product, limit int) []models.Product {
	related := make([]models.Product, 0, limit)
	for _, candidate := range c.products {
		if len(related) == limit {
			break
		}
		if candidate.ID == p.ID || candidate.Category != p.Category {
			continue
		}
		related = append(related, candidate)
	}
	return related
}

// Featured returns the n highest-rated products; ties keep catalog order.
func (c *Catalog) Featured(n int) []models.Product {
	featured := c.Query("", models.CategoryAll, SortRating)
	if len(featured) > n {
		featured = featured[:n]
	}
	return featured
}
