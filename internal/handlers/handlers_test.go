package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/essencia/internal/cart"
	"github.com/example/essencia/internal/catalog"
	"github.com/example/essencia/internal/config"
	"github.com/example/essencia/internal/middleware"
	"github.com/example/essencia/internal/routes"
	"github.com/example/essencia/internal/services"
	"github.com/example/essencia/internal/session"
)

type client struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newClient(t *testing.T) *client {
	t.Helper()

	cfg := &config.Config{
		AppPort:               "0",
		SessionSecret:         "test-secret",
		SessionTTL:            time.Hour,
		FreeShippingThreshold: cart.DefaultPricing().FreeShippingThreshold,
		FlatShippingRate:      cart.DefaultPricing().FlatShippingRate,
		TaxRate:               cart.DefaultPricing().TaxRate,
	}

	cat, err := catalog.Default()
	require.NoError(t, err)

	store := session.NewStore(cart.DefaultPricing(), time.Hour)
	payment := services.NewPaymentServiceWithSleeper(2*time.Second, func(time.Duration) {})
	contact := services.NewContactServiceWithSleeper(2*time.Second, func(time.Duration) {})

	app := fiber.New()
	routes.Register(app, cat, store, cfg, payment, contact)

	return &client{t: t, app: app}
}

func (c *client) do(method, path string, body any) (*http.Response, map[string]any) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(middleware.SessionTokenHeader, c.token)
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)

	if token := resp.Header.Get(middleware.SessionTokenHeader); token != "" {
		c.token = token
	}

	// Fiber's default error handler renders fiber.NewError responses as
	// text/plain; only envelope responses carry JSON.
	var decoded map[string]any
	if strings.Contains(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	resp.Body.Close()
	return resp, decoded
}

func data(body map[string]any) map[string]any {
	d, _ := body["data"].(map[string]any)
	return d
}

func TestSessionTokenIssuedAndReused(t *testing.T) {
	c := newClient(t)

	resp, _ := c.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, c.token)

	c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": "1"})

	// Same token resolves the same cart.
	_, body := c.do(http.MethodGet, "/api/cart", nil)
	assert.Equal(t, float64(1), data(body)["item_count"])
}

func TestListProductsQueryParams(t *testing.T) {
	c := newClient(t)

	_, body := c.do(http.MethodGet, "/api/products/?category=men&sort=name", nil)
	assert.Equal(t, float64(2), body["count"])

	_, body = c.do(http.MethodGet, "/api/products/?search=gentleman", nil)
	assert.Equal(t, float64(1), body["count"])

	resp, errBody := c.do(http.MethodGet, "/api/products/?category=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, errBody, "rejected queries carry no JSON envelope")
}

func TestGetProduct(t *testing.T) {
	c := newClient(t)

	_, body := c.do(http.MethodGet, "/api/products/3", nil)
	assert.Equal(t, "Marble Oud", data(body)["name"])
	assert.NotNil(t, body["related"])

	resp, _ := c.do(http.MethodGet, "/api/products/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartLineOperations(t *testing.T) {
	c := newClient(t)

	resp, body := c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": "1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": "1"})

	_, body = c.do(http.MethodGet, "/api/cart", nil)
	lines := data(body)["lines"].([]any)
	require.Len(t, lines, 1)
	totals := data(body)["totals"].(map[string]any)
	assert.Equal(t, "258", totals["subtotal"])
	assert.Equal(t, "0", totals["shipping"])
	assert.Equal(t, "20.64", totals["tax"])
	assert.Equal(t, "278.64", totals["total"])

	resp, _ = c.do(http.MethodPut, "/api/cart/items/1", map[string]any{"quantity": -2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = c.do(http.MethodPut, "/api/cart/items/1", map[string]any{"quantity": 0})
	assert.Equal(t, float64(0), data(body)["item_count"])

	resp, _ = c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": "99"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckoutFlowEndToEnd(t *testing.T) {
	c := newClient(t)

	c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": "1"})
	c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": "1"})

	resp, body := c.do(http.MethodPost, "/api/checkout/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "checkout", data(body)["step"])

	resp, body = c.do(http.MethodPost, "/api/checkout/submit", map[string]any{
		"email":      "ada@example.com",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"address":    "12 Marble Row",
		"city":       "New York",
		"zip_code":   "10001",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	order := data(body)["order"].(map[string]any)
	assert.Equal(t, "confirmed", order["status"])
	assert.Equal(t, "278.64", order["total_amount"])

	cartView := data(body)["cart"].(map[string]any)
	assert.Equal(t, "confirmation", cartView["step"])
	assert.Equal(t, float64(0), cartView["item_count"])

	_, body = c.do(http.MethodPost, "/api/checkout/continue", nil)
	assert.Equal(t, "cart", data(body)["step"])

	_, body = c.do(http.MethodGet, "/api/profile/orders", nil)
	assert.Equal(t, float64(1), body["count"])
}

func TestCheckoutGuards(t *testing.T) {
	c := newClient(t)

	// Empty cart cannot enter checkout.
	resp, _ := c.do(http.MethodPost, "/api/checkout/", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Submit and cancel are rejected outside the checkout step.
	resp, _ = c.do(http.MethodPost, "/api/checkout/submit", map[string]any{})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp, _ = c.do(http.MethodPost, "/api/checkout/cancel", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCheckoutCancelKeepsCart(t *testing.T) {
	c := newClient(t)

	c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": "2"})
	c.do(http.MethodPost, "/api/checkout/", nil)

	_, body := c.do(http.MethodPost, "/api/checkout/cancel", nil)
	assert.Equal(t, "cart", data(body)["step"])
	assert.Equal(t, float64(1), data(body)["item_count"])
}

func TestWishlistToggle(t *testing.T) {
	c := newClient(t)

	_, body := c.do(http.MethodPost, "/api/wishlist/4", nil)
	assert.Equal(t, true, data(body)["in_wishlist"])

	_, body = c.do(http.MethodGet, "/api/wishlist", nil)
	assert.Equal(t, float64(1), body["count"])

	_, body = c.do(http.MethodPost, "/api/wishlist/4", nil)
	assert.Equal(t, false, data(body)["in_wishlist"])

	resp, _ := c.do(http.MethodPost, "/api/wishlist/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileAndTheme(t *testing.T) {
	c := newClient(t)

	_, body := c.do(http.MethodPut, "/api/profile", map[string]any{"name": "Grace Hopper"})
	assert.Equal(t, "Grace Hopper", data(body)["name"])

	_, body = c.do(http.MethodGet, "/api/profile", nil)
	profile := data(body)["profile"].(map[string]any)
	assert.Equal(t, "Grace Hopper", profile["name"])

	resp, _ := c.do(http.MethodPut, "/api/profile", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = c.do(http.MethodGet, "/api/themes", nil)
	assert.Len(t, body["data"], 5)

	_, body = c.do(http.MethodPut, "/api/profile/theme", map[string]any{"theme_id": "navy"})
	assert.Equal(t, "Deep Navy", data(body)["name"])

	resp, _ = c.do(http.MethodPut, "/api/profile/theme", map[string]any{"theme_id": "neon"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContentPages(t *testing.T) {
	c := newClient(t)

	_, body := c.do(http.MethodGet, "/api/content/home", nil)
	assert.Equal(t, "ESSENCIA", data(body)["title"])
	assert.Len(t, data(body)["featured"], 3)

	_, body = c.do(http.MethodGet, "/api/content/about", nil)
	assert.NotEmpty(t, data(body)["story"])

	_, body = c.do(http.MethodGet, "/api/content/contact", nil)
	assert.NotEmpty(t, data(body)["email"])
}

func TestContactSubmission(t *testing.T) {
	c := newClient(t)

	resp, body := c.do(http.MethodPost, "/api/contact", map[string]any{
		"name": "Ada", "email": "bad-address", "subject": "", "message": "hi",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := body["errors"].(map[string]any)
	assert.Equal(t, "Email is invalid", errs["email"])
	assert.Equal(t, "Subject is required", errs["subject"])

	resp, body = c.do(http.MethodPost, "/api/contact", map[string]any{
		"name": "Ada", "email": "ada@example.com", "subject": "Hello", "message": "hi",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Hello", data(body)["subject"])
}
