package models

import "github.com/shopspring/decimal"

// CartLine is one product's entry in a cart. Quantity is always >= 1; a
// quantity-zero request removes the line instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price x quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are the derived monetary amounts for a cart. They are recomputed
// on every read and never stored.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CheckoutForm carries the contact, shipping and payment fields entered
// during checkout. All fields are free text; the payment-entry fields are
// never charged against anything real.
type CheckoutForm struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	ZipCode    string `json:"zip_code"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}
