package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/example/essencia/internal/models"
)

// Default returns the seeded ESSENCIA catalog.
func Default() (*Catalog, error) {
	return New(seedProducts)
}

var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Chocolate Noir",
		Price:       decimal.NewFromInt(129),
		Image:       "https://images.unsplash.com/photo-1610113550457-62d4de9cc267?w=1080",
		Category:    models.CategoryUnisex,
		Description: "A rich, decadent fragrance with notes of dark chocolate, vanilla, and amber. Perfect for evening wear.",
		Notes: models.FragranceNotes{
			Top:    []string{"Dark Chocolate", "Bergamot", "Pink Pepper"},
			Middle: []string{"Vanilla", "Rose", "Jasmine"},
			Base:   []string{"Amber", "Sandalwood", "Musk"},
		},
		Rating:  4.8,
		Reviews: 124,
	},
	{
		ID:          "2",
		Name:        "Velvet Rose",
		Price:       decimal.NewFromInt(145),
		Image:       "https://images.unsplash.com/photo-1543422655-ac1c6ca993ed?w=1080",
		Category:    models.CategoryWomen,
		Description: "An elegant floral composition featuring Bulgarian rose, peony, and white musk.",
		Notes: models.FragranceNotes{
			Top:    []string{"Bulgarian Rose", "Peony", "Lemon"},
			Middle: []string{"White Rose", "Lily of the Valley", "Peach"},
			Base:   []string{"White Musk", "Cedar", "Vanilla"},
		},
		Rating:  4.9,
		Reviews: 89,
	},
	{
		ID:          "3",
		Name:        "Marble Oud",
		Price:       decimal.NewFromInt(189),
		Image:       "https://images.unsplash.com/photo-1758871993077-e084cc7eca86?w=1080",
		Category:    models.CategoryMen,
		Description: "A sophisticated blend of oud, leather, and spices for the modern gentleman.",
		Notes: models.FragranceNotes{
			Top:    []string{"Cardamom", "Saffron", "Black Pepper"},
			Middle: []string{"Oud", "Rose", "Leather"},
			Base:   []string{"Amber", "Patchouli", "Vanilla"},
		},
		Rating:  4.7,
		Reviews: 156,
	},
	{
		ID:          "4",
		Name:        "Golden Essence",
		Price:       decimal.NewFromInt(159),
		Image:       "https://images.unsplash.com/photo-1655500064410-95e2f2c7b769?w=1080",
		Category:    models.CategoryLimited,
		Description: "Limited edition fragrance with 24k gold flakes and rare botanical extracts.",
		Notes: models.FragranceNotes{
			Top:    []string{"Golden Apple", "Champagne", "Citrus"},
			Middle: []string{"Gold Orchid", "Magnolia", "Honey"},
			Base:   []string{"Golden Amber", "Precious Woods", "Silk Musk"},
		},
		Rating:  5.0,
		Reviews: 42,
	},
	{
		ID:          "5",
		Name:        "Ocean Breeze",
		Price:       decimal.NewFromInt(99),
		Image:       "https://images.unsplash.com/photo-1758225502621-9102d2856dc8?w=1080",
		Category:    models.CategoryUnisex,
		Description: "Fresh and invigorating scent reminiscent of ocean waves and sea salt.",
		Notes: models.FragranceNotes{
			Top:    []string{"Sea Salt", "Bergamot", "Aqua"},
			Middle: []string{"Marine Accord", "Lily", "Mint"},
			Base:   []string{"Driftwood", "Ambergris", "White Musk"},
		},
		Rating:  4.6,
		Reviews: 203,
	},
	{
		ID:          "6",
		Name:        "Sunset Paradise",
		Price:       decimal.NewFromInt(119),
		Image:       "https://images.unsplash.com/photo-1543422655-ac1c6ca993ed?w=1080",
		Category:    models.CategoryWomen,
		Description: "Tropical and warm fragrance with exotic fruits and floral undertones.",
		Notes: models.FragranceNotes{
			Top:    []string{"Mango", "Passion Fruit", "Coconut"},
			Middle: []string{"Frangipani", "Hibiscus", "Orange Blossom"},
			Base:   []string{"Vanilla", "Sandalwood", "Tropical Woods"},
		},
		Rating:  4.5,
		Reviews: 167,
	},
	{
		ID:          "7",
		Name:        "Midnight Storm",
		Price:       decimal.NewFromInt(139),
		Image:       "https://images.unsplash.com/photo-1758871993077-e084cc7eca86?w=1080",
		Category:    models.CategoryMen,
		Description: "Dark and mysterious fragrance with smoky and woody notes.",
		Notes: models.FragranceNotes{
			Top:    []string{"Black Pepper", "Grapefruit", "Elemi"},
			Middle: []string{"Vetiver", "Cedarwood", "Geranium"},
			Base:   []string{"Patchouli", "Labdanum", "Smoke"},
		},
		Rating:  4.8,
		Reviews: 134,
	},
	{
		ID:          "8",
		Name:        "Crystal Garden",
		Price:       decimal.NewFromInt(169),
		Image:       "https://images.unsplash.com/photo-1610113550457-62d4de9cc267?w=1080",
		Category:    models.CategoryLimited,
		Description: "Crystalline and pure fragrance with rare white flowers and crystal essences.",
		Notes: models.FragranceNotes{
			Top:    []string{"Crystal Dew", "White Tea", "Silver Mint"},
			Middle: []string{"White Lotus", "Crystal Rose", "Moonflower"},
			Base:   []string{"Clear Musk", "Crystal Amber", "Pure Vanilla"},
		},
		Rating:  4.9,
		Reviews: 76,
	},
}
