package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/cart"
	"github.com/example/essencia/internal/middleware"
	"github.com/example/essencia/internal/models"
	"github.com/example/essencia/internal/services"
)

// CheckoutHandler drives the cart -> checkout -> confirmation flow.
type CheckoutHandler struct {
	payment *services.PaymentService
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(payment *services.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{payment: payment}
}

type checkoutFormRequest struct {
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

// Begin moves the session cart into the checkout form step. An empty cart
// is turned away here, the way the storefront UI keeps the checkout button
// disabled; the state machine itself does not enforce it.
func (h *CheckoutHandler) Begin(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	if sess.CartIsEmpty() {
		return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	}

	if err := sess.BeginCheckout(); err != nil {
		return transitionError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": sess.CartView()})
}

// Submit runs the simulated payment processing, clears the cart and
// returns the confirmed order.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	var req checkoutFormRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := sess.SubmitCheckout(c.Context(), h.payment, models.CheckoutForm{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address:    req.Address,
		City:       req.City,
		ZipCode:    req.ZipCode,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
	})
	if err != nil {
		return transitionError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order": order,
			"cart":  sess.CartView(),
		},
	})
}

// Cancel abandons the checkout form and returns to cart review.
func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	if err := sess.CancelCheckout(); err != nil {
		return transitionError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": sess.CartView()})
}

// Continue leaves the confirmation screen for a fresh, empty cart.
func (h *CheckoutHandler) Continue(c *fiber.Ctx) error {
	sess, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	if err := sess.ContinueShopping(); err != nil {
		return transitionError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": sess.CartView()})
}

func transitionError(err error) error {
	if errors.Is(err, cart.ErrInvalidTransition) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return err
}
