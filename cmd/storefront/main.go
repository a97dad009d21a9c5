package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saylla/ponto-eletronico-shop/internal/auth"
	"github.com/saylla/ponto-eletronico-shop/internal/cart"
	"github.com/saylla/ponto-eletronico-shop/internal/catalog"
	"github.com/saylla/ponto-eletronico-shop/internal/checkout"
	h "github.com/saylla/ponto-eletronico-shop/internal/http"
	"github.com/saylla/ponto-eletronico-shop/internal/orders"
)

type Config struct {
	HTTPPort        string
	JWTSecret       string
	TokenTTL        time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	ProcessingDelay time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:        getEnvDuration("TOKEN_TTL", auth.DefaultTokenTTL),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		ProcessingDelay: getEnvDuration("CHECKOUT_PROCESSING_DELAY", checkout.DefaultProcessingDelay),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("invalid duration in %s, using default %v", key, defaultValue)
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	authService, err := auth.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to initialize auth service: %v", err)
	}

	catalogStore := catalog.NewMemoryStore()
	cartStore := cart.NewMemoryStore()
	orderStore := orders.NewMemoryStore()
	sessions := checkout.NewSessions(checkout.Config{
		Carts:  cartStore,
		Orders: orderStore,
		Delay:  cfg.ProcessingDelay,
	})

	authHandler := h.NewAuthHandler(authService)
	productHandler := h.NewProductHandler(catalogStore)
	cartHandler := h.NewCartHandler(cartStore, catalogStore)
	checkoutHandler := h.NewCheckoutHandler(sessions, cartStore)
	adminHandler := h.NewAdminHandler(catalogStore, orderStore)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Catalog browsing is public
		r.Get("/products", productHandler.List)
		r.Get("/products/{product_id}", productHandler.Get)
		r.Get("/categories", productHandler.Categories)

		// Cart and checkout require a session
		r.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware(authService))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.Clear)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", checkoutHandler.Enter)
				r.Get("/", checkoutHandler.Status)
				r.Delete("/", checkoutHandler.Abandon)
				r.Put("/fields", checkoutHandler.SetFields)
				r.Put("/payment-method", checkoutHandler.SetPaymentMethod)
				r.Post("/submit", checkoutHandler.Submit)
				r.Post("/ack", checkoutHandler.Acknowledge)
			})
		})

		// Back-office
		r.Route("/admin", func(r chi.Router) {
			r.Use(h.AuthMiddleware(authService))
			r.Use(h.RequireAdmin)

			r.Post("/products", adminHandler.CreateProduct)
			r.Put("/products/{product_id}", adminHandler.UpdateProduct)
			r.Delete("/products/{product_id}", adminHandler.DeleteProduct)
			r.Get("/orders", adminHandler.ListOrders)
			r.Get("/orders/{order_id}", adminHandler.GetOrder)
			r.Put("/orders/{order_id}/status", adminHandler.UpdateOrderStatus)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
}
