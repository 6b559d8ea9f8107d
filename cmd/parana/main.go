package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"parana/internal/config"
	"parana/internal/http/handlers"
	applog "parana/internal/log"
	"parana/internal/metrics"
	"parana/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	m := metrics.New()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong, please try again"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/healthz") || strings.HasPrefix(p, "/metrics")
		},
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, m)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	shopper := app.Group("/", handlers.RequireShopper(deps.Shoppers))

	// Catalog browse
	shopper.Get("/categories", deps.CatalogHandler.Categories)
	shopper.Get("/categories/:id/products", deps.CatalogHandler.Products)
	shopper.Get("/products/:id/sellers", deps.CatalogHandler.Sellers)

	// Basket
	shopper.Get("/basket", deps.BasketHandler.View)
	shopper.Post("/basket/items", deps.BasketHandler.Add)
	shopper.Put("/basket/items/:productID", deps.BasketHandler.UpdateQuantity)
	shopper.Delete("/basket/items/:productID", deps.BasketHandler.Remove)

	// Checkout & history
	shopper.Get("/checkout", deps.CheckoutHandler.Summary)
	shopper.Post("/checkout", deps.CheckoutHandler.Confirm)
	shopper.Get("/orders", deps.HistoryHandler.List)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
