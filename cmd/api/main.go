package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sunnyside-backend/config"
	"sunnyside-backend/internal/delivery/http/middleware"
	v1 "sunnyside-backend/internal/delivery/http/v1"
	"sunnyside-backend/internal/infrastructure/cache"
	"sunnyside-backend/internal/infrastructure/notify"
	"sunnyside-backend/internal/infrastructure/stripe"
	"sunnyside-backend/internal/repository/postgres"
	"sunnyside-backend/internal/usecase"
	"sunnyside-backend/pkg/logger"
	"sunnyside-backend/pkg/storage"
	"sunnyside-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Initialize Database
	pgxPool, err := postgres.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Successfully connected to PostgreSQL via pgx")

	// Initialize Repositories
	userRepo := postgres.NewUserRepository(pgxPool)
	menuRepo := postgres.NewMenuRepository(pgxPool)
	orderRepo := postgres.NewOrderRepository(pgxPool)
	txManager := postgres.NewTransactionManager(pgxPool)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Auth Module
	authUC := usecase.NewAuthUsecase(userRepo, cfg.AccessTokenExpiry)
	authHandler := v1.NewAuthHandler(authUC, cfg.Env, cfg.AccessTokenExpiry)

	// Storage Module (R2)
	var r2Storage *storage.R2Storage
	if cfg.R2AccountID != "" {
		r2Storage, err = storage.NewR2Storage(
			context.Background(),
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2PublicURL,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 storage")
		}
	} else {
		log.Warn().Msg("R2 not configured, image upload disabled")
	}
	uploadHandler := v1.NewUploadHandler(r2Storage, cfg.MaxUploadSizeMB)

	// Catalog Module
	var imageStore usecase.ImageStore
	if r2Storage != nil {
		imageStore = r2Storage
	}
	catalogUC := usecase.NewCatalogUsecase(menuRepo, memCache, imageStore, cfg.CacheMenuTTL)
	catalogHandler := v1.NewCatalogHandler(catalogUC)
	adminCatalogHandler := v1.NewAdminCatalogHandler(catalogUC)

	// Payment + Notification infrastructure
	stripeClient := stripe.NewClient(cfg.StripeSecretKey, cfg.StripeAPIBase, cfg.StripeTimeout)
	orderRelay := notify.NewRelay(cfg.OrderWebhookURL, cfg.OrderWebhookTimeout)

	// Order Module
	orderUC := usecase.NewOrderUsecase(
		orderRepo,
		menuRepo,
		userRepo,
		stripeClient,
		orderRelay,
		txManager,
		cfg.Currency,
		cfg.MaxCartQuantity,
	)
	orderHandler := v1.NewOrderHandler(orderUC)
	adminOrderHandler := v1.NewAdminOrderHandler(orderUC)
	paymentHandler := v1.NewPaymentHandler(orderUC)
	notifyHandler := v1.NewNotifyHandler(orderRelay)

	// Stats Module
	statsUC := usecase.NewStatsUsecase(orderRepo, memCache, cfg.CacheStatsTTL)
	adminStatsHandler := v1.NewAdminStatsHandler(statsUC)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/v1/auth/me", middleware.AuthMiddleware(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/v1/user/profile", middleware.AuthMiddleware(http.HandlerFunc(authHandler.UpdateProfile)))

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/menu", catalogHandler.GetMenu)
	mux.HandleFunc("GET /api/v1/menu/{id}", catalogHandler.GetItem)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)

	// Cart, Payment & Checkout (Protected)
	mux.Handle("GET /api/v1/cart", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.GetCart)))
	mux.Handle("POST /api/v1/cart", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.AddToCart)))
	mux.Handle("PUT /api/v1/cart", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.UpdateCart)))
	mux.Handle("DELETE /api/v1/cart/{itemId}", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.RemoveFromCart)))
	mux.Handle("POST /api/v1/payments/intent", middleware.AuthMiddleware(http.HandlerFunc(paymentHandler.CreateIntent)))
	mux.Handle("POST /api/v1/checkout", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.Checkout)))
	mux.Handle("GET /api/v1/orders", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.GetMyOrders)))
	mux.Handle("GET /api/v1/orders/{id}", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.GetOrder)))
	mux.Handle("POST /api/v1/notify-order", middleware.AuthMiddleware(http.HandlerFunc(notifyHandler.ForwardOrder)))

	// Uploads
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}
	mux.Handle("POST /api/v1/upload", adminOnly(uploadHandler.UploadFile))

	// Admin Item Management
	mux.Handle("GET /api/v1/admin/items", adminOnly(adminCatalogHandler.ListItems))
	mux.Handle("POST /api/v1/admin/items", adminOnly(adminCatalogHandler.CreateItem))
	mux.Handle("PUT /api/v1/admin/items/{id}", adminOnly(adminCatalogHandler.UpdateItem))
	mux.Handle("DELETE /api/v1/admin/items/{id}", adminOnly(adminCatalogHandler.DeleteItem))

	// Admin Orders
	mux.Handle("GET /api/v1/admin/orders", adminOnly(adminOrderHandler.ListOrders))
	mux.Handle("GET /api/v1/admin/orders/{id}", adminOnly(adminOrderHandler.GetOrder))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/status", adminOnly(adminOrderHandler.UpdateStatus))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/payment-status", adminOnly(adminOrderHandler.UpdatePaymentStatus))
	mux.Handle("GET /api/v1/admin/orders/{id}/history", adminOnly(adminOrderHandler.GetOrderHistory))

	// Admin Users
	mux.Handle("GET /api/v1/admin/users", adminOnly(authHandler.ListUsers))

	// Admin Stats
	mux.Handle("GET /api/v1/admin/stats", adminOnly(adminStatsHandler.GetStats))

	// Health Check
	healthHandler := v1.NewHealthHandler(pgxPool)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Check)
	mux.HandleFunc("GET /health", healthHandler.Check) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,            // requests per second
		100,           // burst
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	pgxPool.Close()
	log.Info().Msg("Server exited properly")
}
