// Package cart implements the single-session shopping cart and its
// three-step checkout flow: cart review, checkout form, confirmation.
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/essencia/internal/models"
)

// Step names a position in the checkout flow.
type Step string

const (
	StepCart         Step = "cart"
	StepCheckout     Step = "checkout"
	StepConfirmation Step = "confirmation"
)

// ErrInvalidTransition is returned when a checkout operation is requested
// from a step it cannot run in.
var ErrInvalidTransition = errors.New("invalid checkout transition")

// Pricing holds the rates used to derive cart totals.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingRate      decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPricing returns the storefront defaults: free shipping above 100,
// a flat 15 rate below it, 8% tax.
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromInt(100),
		FlatShippingRate:      decimal.NewFromInt(15),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// PaymentProcessor settles a checkout attempt. The simulated gateway never
// fails; the error return exists for a real integration.
type PaymentProcessor interface {
	Process(ctx context.Context, amount decimal.Decimal) error
}

// Cart owns a session's line items and checkout step. It keeps at most one
// line per product ID, in insertion order, with quantity always >= 1.
// Cart is not safe for concurrent use; the owning session serializes
// access.
type Cart struct {
	pricing Pricing
	step    Step
	lines   []models.CartLine
	form    models.CheckoutForm
}

// New returns an empty cart at the review step.
func New(pricing Pricing) *Cart {
	return &Cart{pricing: pricing, step: StepCart}
}

func (c *Cart) find(productID string) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddItem inserts a line with quantity 1 for a new product, or increments
// the existing line's quantity by 1.
func (c *Cart) AddItem(p models.Product) {
	if i := c.find(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, models.CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity of an existing line. Zero removes the
// line; negative quantities are rejected as a no-op; an absent line is
// left absent.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 0 {
		return
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return
	}
	if i := c.find(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

// RemoveItem deletes the line for productID. Removing an absent line is a
// no-op.
func (c *Cart) RemoveItem(productID string) {
	if i := c.find(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount sums the quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Step returns the current checkout step.
func (c *Cart) Step() Step {
	return c.step
}

// Form returns the checkout form entered so far.
func (c *Cart) Form() models.CheckoutForm {
	return c.form
}

// Totals derives the monetary amounts for the current lines. Amounts are
// recomputed on every call and never cached, so they cannot drift from the
// lines. Shipping is zero exactly when the subtotal exceeds the free
// threshold.
func (c *Cart) Totals() models.Totals {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	shipping := c.pricing.FlatShippingRate
	if subtotal.GreaterThan(c.pricing.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(c.pricing.TaxRate).Round(2)

	return models.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// BeginCheckout moves from cart review to the checkout form. The form
// starts blank. Emptiness is not enforced here; the surrounding UI keeps
// users out of checkout with an empty cart.
func (c *Cart) BeginCheckout() error {
	if c.step != StepCart {
		return ErrInvalidTransition
	}
	c.form = models.CheckoutForm{}
	c.step = StepCheckout
	return nil
}

// Submit runs the payment processor for the cart total, then clears all
// lines and moves to the confirmation step. The returned order snapshots
// the lines and totals as they were charged.
func (c *Cart) Submit(ctx context.Context, processor PaymentProcessor, form models.CheckoutForm) (models.Order, error) {
	if c.step != StepCheckout {
		return models.Order{}, ErrInvalidTransition
	}
	c.form = form

	totals := c.Totals()
	if err := processor.Process(ctx, totals.Total); err != nil {
		return models.Order{}, err
	}

	orderID := uuid.New()
	order := models.Order{
		ID:          orderID,
		OrderNumber: orderNumber(orderID),
		Status:      "confirmed",
		PlacedAt:    time.Now(),
		Subtotal:    totals.Subtotal,
		ShippingFee: totals.Shipping,
		Tax:         totals.Tax,
		TotalAmount: totals.Total,
		Email:       form.Email,
		FullName:    fullName(form),
		Address:     form.Address,
		City:        form.City,
		ZipCode:     form.ZipCode,
	}
	for _, l := range c.lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.Product.Price,
			LineTotal:   l.LineTotal(),
		})
	}

	c.lines = nil
	c.step = StepConfirmation
	return order, nil
}

// Cancel discards the in-progress form and returns to cart review without
// touching the lines.
func (c *Cart) Cancel() error {
	if c.step != StepCheckout {
		return ErrInvalidTransition
	}
	c.form = models.CheckoutForm{}
	c.step = StepCart
	return nil
}

// ContinueShopping leaves the confirmation step for a fresh, empty cart.
func (c *Cart) ContinueShopping() error {
	if c.step != StepConfirmation {
		return ErrInvalidTransition
	}
	c.lines = nil
	c.form = models.CheckoutForm{}
	c.step = StepCart
	return nil
}

func fullName(form models.CheckoutForm) string {
	switch {
	case form.FirstName == "":
		return form.LastName
	case form.LastName == "":
		return form.FirstName
	}
	return form.FirstName + " " + form.LastName
}

// orderNumber renders the leading bytes of the order UUID as the
// human-facing number, so distinct orders can never share one.
func orderNumber(id uuid.UUID) string {
	return fmt.Sprintf("#%X", id[:6])
}
