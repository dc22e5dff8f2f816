package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/essencia/internal/cart"
	"github.com/example/essencia/internal/catalog"
	"github.com/example/essencia/internal/config"
	"github.com/example/essencia/internal/routes"
	"github.com/example/essencia/internal/services"
	"github.com/example/essencia/internal/session"
)

func main() {
	cfg := config.Load()

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("catalog seed error: %v", err)
	}

	store := session.NewStore(cart.Pricing{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingRate:      cfg.FlatShippingRate,
		TaxRate:               cfg.TaxRate,
	}, cfg.SessionTTL)
	payment := services.NewPaymentService(cfg.CheckoutDelay)
	contact := services.NewContactService(cfg.ContactDelay)

	app := fiber.New(fiber.Config{
		AppName: "Essencia Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, cat, store, cfg, payment, contact)

	log.Printf("Serving %d products on :%s", cat.Len(), cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
