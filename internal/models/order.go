package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a confirmed checkout, kept in the session's order history.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	PlacedAt    time.Time       `json:"placed_at"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Tax         decimal.Decimal `json:"tax"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Email       string          `json:"email"`
	FullName    string          `json:"full_name"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	ZipCode     string          `json:"zip_code"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem snapshots one cart line at the moment the order was placed.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}
