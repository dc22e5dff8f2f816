// Package session holds all per-visitor state: the cart state machine,
// wishlist, profile, theme selection, and order history. Sessions live in
// memory only and die with the process.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/essencia/internal/cart"
	"github.com/example/essencia/internal/models"
)

// Session is one visitor's state. All access goes through its methods,
// which serialize the visitor's events the way a UI event loop would.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	cart     *cart.Cart
	wishlist []models.Product
	profile  models.Profile
	theme    models.Theme
	orders   []models.Order
}

// CartView is a consistent snapshot of the cart for rendering.
type CartView struct {
	Step      cart.Step         `json:"step"`
	Lines     []models.CartLine `json:"lines"`
	Totals    models.Totals     `json:"totals"`
	ItemCount int               `json:"item_count"`
}

func newSession(pricing cart.Pricing) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		cart:      cart.New(pricing),
		theme:     models.DefaultTheme(),
		profile: models.Profile{
			Name:     "Alexandra Smith",
			Email:    "alexandra@example.com",
			Bio:      "Passionate about luxury fragrances and discovering unique scents from around the world.",
			Location: "New York, NY",
			JoinDate: now.Format("January 2006"),
		},
	}
}

// AddToCart adds one unit of p to the cart.
func (s *Session) AddToCart(p models.Product) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(p)
	return s.cartViewLocked()
}

// UpdateQuantity sets a line's quantity; zero removes, negative is a no-op.
func (s *Session) UpdateQuantity(productID string, quantity int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, quantity)
	return s.cartViewLocked()
}

// RemoveFromCart deletes a line if present.
func (s *Session) RemoveFromCart(productID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
	return s.cartViewLocked()
}

// CartView snapshots the cart's step, lines and derived totals.
func (s *Session) CartView() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartViewLocked()
}

func (s *Session) cartViewLocked() CartView {
	return CartView{
		Step:      s.cart.Step(),
		Lines:     s.cart.Lines(),
		Totals:    s.cart.Totals(),
		ItemCount: s.cart.ItemCount(),
	}
}

// CartIsEmpty reports whether the cart has no lines.
func (s *Session) CartIsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// BeginCheckout transitions the cart into the checkout form step.
func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.BeginCheckout()
}

// SubmitCheckout drives the payment processor and, on success, records the
// confirmed order in the session history. The session stays locked for the
// duration of processing, so a visitor's events never interleave with an
// in-flight submission.
func (s *Session) SubmitCheckout(ctx context.Context, processor cart.PaymentProcessor, form models.CheckoutForm) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.cart.Submit(ctx, processor, form)
	if err != nil {
		return models.Order{}, err
	}
	s.orders = append(s.orders, order)
	return order, nil
}

// CancelCheckout discards the in-progress form and returns to cart review.
func (s *Session) CancelCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Cancel()
}

// ContinueShopping leaves the confirmation step for a fresh cart.
func (s *Session) ContinueShopping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ContinueShopping()
}

// ToggleWishlist flips p's wishlist membership and reports whether the
// product is on the list afterwards. Display order is insertion order.
func (s *Session) ToggleWishlist(p models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.wishlist {
		if s.wishlist[i].ID == p.ID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return false
		}
	}
	s.wishlist = append(s.wishlist, p)
	return true
}

// Wishlist returns the wishlisted products in insertion order.
func (s *Session) Wishlist() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// InWishlist reports membership by product ID.
func (s *Session) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Profile returns the visitor's profile card.
func (s *Session) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile replaces the profile card.
func (s *Session) SetProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

// Theme returns the active palette.
func (s *Session) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme replaces the active palette wholesale.
func (s *Session) SetTheme(t models.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}

// Orders returns the session's confirmed orders, newest first.
func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[len(s.orders)-1-i] = o
	}
	return out
}
