package session

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/essencia/internal/cart"
	"github.com/example/essencia/internal/models"
	"github.com/example/essencia/internal/services"
)

func newTestStore() *Store {
	return NewStore(cart.DefaultPricing(), time.Hour)
}

func fakePayment() *services.PaymentService {
	return services.NewPaymentServiceWithSleeper(2*time.Second, func(time.Duration) {})
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore()

	sess := store.Create()
	found, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, found)
	assert.Equal(t, 1, store.Len())
}

func TestGetDropsExpiredSessions(t *testing.T) {
	store := newTestStore()
	sess := store.Create()
	sess.CreatedAt = time.Now().Add(-2 * time.Hour)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestCreateSweepsExpiredSessions(t *testing.T) {
	store := newTestStore()
	stale := store.Create()
	stale.CreatedAt = time.Now().Add(-2 * time.Hour)

	fresh := store.Create()

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(fresh.ID)
	assert.True(t, ok)
}

func TestZeroTTLDisablesExpiry(t *testing.T) {
	store := NewStore(cart.DefaultPricing(), 0)
	sess := store.Create()
	sess.CreatedAt = time.Now().Add(-48 * time.Hour)

	_, ok := store.Get(sess.ID)
	assert.True(t, ok)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := newTestStore()
	a := store.Create()
	b := store.Create()

	a.AddToCart(models.Product{ID: "1", Name: "Chocolate Noir"})

	assert.Equal(t, 1, a.CartView().ItemCount)
	assert.Zero(t, b.CartView().ItemCount)
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	sess := newTestStore().Create()
	p := models.Product{ID: "2", Name: "Velvet Rose"}

	assert.True(t, sess.ToggleWishlist(p))
	assert.True(t, sess.InWishlist("2"))

	assert.False(t, sess.ToggleWishlist(p))
	assert.False(t, sess.InWishlist("2"))
	assert.Empty(t, sess.Wishlist())
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	sess := newTestStore().Create()

	sess.ToggleWishlist(models.Product{ID: "3"})
	sess.ToggleWishlist(models.Product{ID: "1"})
	sess.ToggleWishlist(models.Product{ID: "2"})
	sess.ToggleWishlist(models.Product{ID: "1"})

	list := sess.Wishlist()
	require.Len(t, list, 2)
	assert.Equal(t, "3", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
}

func TestSubmitCheckoutRecordsOrderHistory(t *testing.T) {
	sess := newTestStore().Create()
	payment := fakePayment()

	for i := 0; i < 2; i++ {
		sess.AddToCart(models.Product{ID: "1", Name: "Chocolate Noir", Price: decimal.NewFromInt(129)})
		require.NoError(t, sess.BeginCheckout())
		_, err := sess.SubmitCheckout(context.Background(), payment, models.CheckoutForm{Email: "a@example.com"})
		require.NoError(t, err)
		require.NoError(t, sess.ContinueShopping())
	}

	orders := sess.Orders()
	require.Len(t, orders, 2)
	// Newest first.
	assert.False(t, orders[0].PlacedAt.Before(orders[1].PlacedAt))
	assert.True(t, sess.CartIsEmpty())
}

func TestFailedSubmitDoesNotRecordOrder(t *testing.T) {
	sess := newTestStore().Create()

	// Still at cart review, so the transition is rejected.
	_, err := sess.SubmitCheckout(context.Background(), fakePayment(), models.CheckoutForm{})
	require.Error(t, err)
	assert.Empty(t, sess.Orders())
}

func TestThemeReplacedWholesale(t *testing.T) {
	sess := newTestStore().Create()
	assert.Equal(t, models.DefaultTheme(), sess.Theme())

	navy, ok := models.ThemeByID("navy")
	require.True(t, ok)
	sess.SetTheme(navy)
	assert.Equal(t, navy, sess.Theme())
}

func TestNewSessionDefaults(t *testing.T) {
	sess := newTestStore().Create()

	view := sess.CartView()
	assert.Equal(t, cart.StepCart, view.Step)
	assert.Empty(t, view.Lines)
	assert.NotEmpty(t, sess.Profile().Name)
}
