package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/example/essencia/internal/models"
)

// SortKey is the user-selected ordering criterion for query results.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// Query derives a filtered, sorted view of the catalog. A product is
// included iff its category matches (CategoryAll matches everything) and
// the search term is a case-insensitive substring of its name or
// description; the empty term matches everything.
//
// All sorts are stable, so identical inputs always produce an identical
// ordered sequence. An unrecognized sort key falls back to the name sort.
func (c *Catalog) Query(searchTerm string, category models.Category, sortKey SortKey) []models.Product {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	matched := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != models.CategoryAll && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		matched = append(matched, p)
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price.LessThan(matched[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[j].Price.LessThan(matched[i].Price)
		})
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[j].Rating < matched[i].Rating
		})
	case SortNewest:
		sort.SliceStable(matched, func(i, j int) bool {
			return c.recency[matched[j].ID] < c.recency[matched[i].ID]
		})
	default:
		coll := collate.New(language.English)
		sort.SliceStable(matched, func(i, j int) bool {
			return coll.CompareString(matched[i].Name, matched[j].Name) < 0
		})
	}

	return matched
}
