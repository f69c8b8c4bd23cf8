package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/catalog"
	"github.com/shahhardik4599/creatively-yours/internal/contentful"
	"github.com/shahhardik4599/creatively-yours/internal/handler"
	mid "github.com/shahhardik4599/creatively-yours/internal/middleware"
	"github.com/shahhardik4599/creatively-yours/internal/session"
	"github.com/shahhardik4599/creatively-yours/pkg/config"
	"github.com/shahhardik4599/creatively-yours/pkg/logger"
	"github.com/shahhardik4599/creatively-yours/pkg/sessiontoken"
	"github.com/shahhardik4599/creatively-yours/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize session token signing
	sessiontoken.Initialize(&appConfig.Session)
	log.Info("Session tokens initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Content client; without credentials every fetch degrades to empty
	contentClient := contentful.New(contentful.Config{
		SpaceID:     appConfig.Contentful.SpaceID,
		AccessToken: appConfig.Contentful.AccessToken,
		Timeout:     appConfig.Contentful.HTTPTimeout,
	}, log)
	if appConfig.Contentful.SpaceID == "" || appConfig.Contentful.AccessToken == "" {
		log.Warn("Content source not configured, all catalog sections will be empty")
	}

	// Catalog store, populated in the background; sections appear as
	// their fetches land
	store := catalog.NewStore()
	loader := catalog.NewLoader(contentClient, appConfig, store, log)
	go loader.Load(context.Background())

	// Guest session registry with idle eviction
	registry := session.NewRegistry(appConfig.Session.IdleTimeout, log)
	registry.StartSweeper(context.Background(), appConfig.Session.SweepInterval)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(store, appConfig.Contact)
	cartHandler := handler.NewCartHandler(store)
	customizerHandler := handler.NewCustomizerHandler(store)
	checkoutHandler := handler.NewCheckoutHandler(appConfig.Contact)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Catalog API routes - read-only content, no session needed
	catalogAPI := e.Group("/api")
	catalogAPI.GET("/products", catalogHandler.ListProducts)
	catalogAPI.GET("/products/:id", catalogHandler.GetProduct)
	catalogAPI.GET("/categories", catalogHandler.ListCategories)
	catalogAPI.GET("/testimonials", catalogHandler.ListTestimonials)
	catalogAPI.GET("/gallery", catalogHandler.ListGallery)
	catalogAPI.GET("/hero", catalogHandler.GetHero)
	catalogAPI.GET("/customizer/options", catalogHandler.CustomizerOptions)
	catalogAPI.GET("/links", catalogHandler.Links)

	// Session-scoped routes - cart, customizer and checkout state belong
	// to the guest session attached by the middleware
	sessionAPI := e.Group("/api", mid.SessionMiddleware(registry))
	sessionAPI.GET("/cart", cartHandler.GetCart)
	sessionAPI.POST("/cart/items", cartHandler.AddItem)
	sessionAPI.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	sessionAPI.PATCH("/cart/items/:id", cartHandler.AdjustItem)

	sessionAPI.GET("/customizer", customizerHandler.State)
	sessionAPI.POST("/customizer/base", customizerHandler.SelectBase)
	sessionAPI.POST("/customizer/items/toggle", customizerHandler.ToggleItem)
	sessionAPI.POST("/customizer/personalize", customizerHandler.Personalize)
	sessionAPI.POST("/customizer/advance", customizerHandler.Advance)
	sessionAPI.POST("/customizer/back", customizerHandler.Back)
	sessionAPI.POST("/customizer/complete", customizerHandler.Complete)

	sessionAPI.POST("/checkout/whatsapp", checkoutHandler.WhatsApp)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
