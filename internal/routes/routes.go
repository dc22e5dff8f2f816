package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/catalog"
	"github.com/example/essencia/internal/config"
	"github.com/example/essencia/internal/handlers"
	"github.com/example/essencia/internal/middleware"
	"github.com/example/essencia/internal/services"
	"github.com/example/essencia/internal/session"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, cat *catalog.Catalog, store *session.Store, cfg *config.Config, payment *services.PaymentService, contact *services.ContactService) {
	catalogHandler := handlers.NewCatalogHandler(cat)
	cartHandler := handlers.NewCartHandler(cat)
	checkoutHandler := handlers.NewCheckoutHandler(payment)
	wishlistHandler := handlers.NewWishlistHandler(cat)
	profileHandler := handlers.NewProfileHandler()
	contentHandler := handlers.NewContentHandler(cat)
	contactHandler := handlers.NewContactHandler(contact)

	api := app.Group("/api", middleware.SessionMiddleware(cfg, store))

	// Catalog
	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)

	// Cart
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:id", cartHandler.UpdateItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	// Checkout flow
	checkout := api.Group("/checkout")
	checkout.Post("/", checkoutHandler.Begin)
	checkout.Post("/submit", checkoutHandler.Submit)
	checkout.Post("/cancel", checkoutHandler.Cancel)
	checkout.Post("/continue", checkoutHandler.Continue)

	// Wishlist
	api.Get("/wishlist", wishlistHandler.ListWishlist)
	api.Post("/wishlist/:productId", wishlistHandler.ToggleWishlist)

	// Profile, orders, themes
	api.Get("/profile", profileHandler.GetProfile)
	api.Put("/profile", profileHandler.UpdateProfile)
	api.Get("/profile/orders", profileHandler.ListOrders)
	api.Put("/profile/theme", profileHandler.SetTheme)
	api.Get("/themes", profileHandler.ListThemes)

	// Marketing pages
	content := api.Group("/content")
	content.Get("/home", contentHandler.Home)
	content.Get("/about", contentHandler.About)
	content.Get("/contact", contentHandler.Contact)

	api.Post("/contact", contactHandler.SubmitContact)
}
