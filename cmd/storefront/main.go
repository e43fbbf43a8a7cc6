package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shopverse/storefront/internal/api/handlers"
	"github.com/shopverse/storefront/internal/api/middleware"
	"github.com/shopverse/storefront/internal/cache"
	"github.com/shopverse/storefront/internal/config"
	"github.com/shopverse/storefront/internal/events"
	"github.com/shopverse/storefront/internal/health"
	"github.com/shopverse/storefront/internal/metrics"
	"github.com/shopverse/storefront/internal/promo"
	repository "github.com/shopverse/storefront/internal/repositories"
	service "github.com/shopverse/storefront/internal/services"
	"github.com/shopverse/storefront/internal/tracing"
	stripeClient "github.com/shopverse/storefront/pkg/stripe"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := tracing.Init(context.Background(), &cfg.Tracing, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	paymentClient := stripeClient.NewStripeClient(cfg.Stripe.APIKey)

	productRepo := repository.NewProductRepo(repos.DB)
	cartStore := repository.NewCartStore(redisClient, &cfg.Cart)
	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	cartEvents := events.NewCartEvents()
	cartEvents.Subscribe(func(change events.CartChange) {
		slog.Debug("Cart changed",
			slog.String("sessionId", change.SessionID),
			slog.Int("itemCount", change.ItemCount))
	})

	promoValidator := promo.NewValidator(paymentClient, cfg.Promo.Enabled, cfg.Promo.LookupTimeout)

	cartService := service.NewCartService(cartStore, cartEvents)
	cartHandler := handlers.NewCartHandler(cartService)
	productService := service.NewProductService(productRepo, productCache, &cfg.Cache)
	productHandler := handlers.NewProductHandler(productService)
	promoHandler := handlers.NewPromoHandler(promoValidator)
	checkoutService := service.NewCheckoutService(productRepo, promoValidator, paymentClient, &cfg.Stripe)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: paymentClient,
	})
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.Clear())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("GET /api/v1/cart/email", cartHandler.Email())
	routerMux.HandleFunc("PUT /api/v1/cart/email", cartHandler.SaveEmail())
	routerMux.HandleFunc("GET /api/v1/promo-codes/validate", promoHandler.Validate())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
