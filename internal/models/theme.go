package models

// Theme is one of the storefront color palettes. A session holds exactly
// one theme and replaces it wholesale when the user picks another.
type Theme struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}

// Themes is the fixed palette list offered by the storefront. The first
// entry is the default for new sessions.
var Themes = []Theme{
	{
		ID:         "chocolate",
		Name:       "Chocolate Marble",
		Primary:    "#8B4513",
		Secondary:  "#D2B48C",
		Accent:     "#CD853F",
		Background: "linear-gradient(135deg, #FFF8DC 0%, #F5E6D3 50%, #E6D3C1 100%)",
		Surface:    "#FFFFFF",
		Text:       "#3C2414",
	},
	{
		ID:         "gold",
		Name:       "Gold Luxury",
		Primary:    "#FFD700",
		Secondary:  "#FFF8DC",
		Accent:     "#DAA520",
		Background: "linear-gradient(135deg, #FFFEF7 0%, #FFF8DC 50%, #F0E68C 100%)",
		Surface:    "#FFFFFF",
		Text:       "#8B4513",
	},
	{
		ID:         "rose",
		Name:       "Rose Gold",
		Primary:    "#E8B4B8",
		Secondary:  "#F4E4E6",
		Accent:     "#D4A5A9",
		Background: "linear-gradient(135deg, #FDF2F8 0%, #FCE7F3 50%, #F9A8D4 100%)",
		Surface:    "#FFFFFF",
		Text:       "#7C2D12",
	},
	{
		ID:         "navy",
		Name:       "Deep Navy",
		Primary:    "#1E293B",
		Secondary:  "#64748B",
		Accent:     "#475569",
		Background: "linear-gradient(135deg, #F8FAFC 0%, #E2E8F0 50%, #CBD5E1 100%)",
		Surface:    "#FFFFFF",
		Text:       "#0F172A",
	},
	{
		ID:         "cream",
		Name:       "Cream Dream",
		Primary:    "#F5F5DC",
		Secondary:  "#FFF8DC",
		Accent:     "#F0E68C",
		Background: "linear-gradient(135deg, #FFFEF7 0%, #FFF8DC 50%, #F5F5DC 100%)",
		Surface:    "#FFFFFF",
		Text:       "#8B4513",
	},
}

// ThemeByID looks up a palette by its identifier.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// DefaultTheme returns the palette applied to new sessions.
func DefaultTheme() Theme {
	return Themes[0]
}
