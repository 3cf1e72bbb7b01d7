package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardmart/cardmart/config"
	"github.com/cardmart/cardmart/internal/auth"
	"github.com/cardmart/cardmart/internal/gateway/epay"
	handler "github.com/cardmart/cardmart/internal/handler/http"
	"github.com/cardmart/cardmart/internal/logger"
	"github.com/cardmart/cardmart/internal/middleware"
	"github.com/cardmart/cardmart/internal/repository"
	"github.com/cardmart/cardmart/internal/repository/postgres"
	"github.com/cardmart/cardmart/internal/revalidate"
	"github.com/cardmart/cardmart/internal/service"
	"go.uber.org/zap"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	zl, err := logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zl.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		zl.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		zl.Fatal("Error migrating database", zap.Error(err))
	}

	tokenKey, err := hex.DecodeString(cfg.AuthTokenKey)
	if err != nil {
		zl.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// dependency injection
	// auth
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, token)
	authHandler := handler.NewAuthHandler(authService)

	// admin orders
	var notifier service.Notifier = revalidate.NopNotifier{}
	if cfg.RevalidateURL != "" {
		notifier = revalidate.NewWebhookNotifier(cfg.RevalidateURL, zl)
	}

	orderRepo := repository.NewOrderRepository(db)
	gateway := epay.New(cfg.EpaySubmitURL, cfg.EpayMerchantID, cfg.EpayMerchantKey)
	adminService := service.NewAdminOrderService(orderRepo, gateway, middleware.AdminAuthorizer{}, notifier, cfg.EpayMerchantID, cfg.EpayMerchantKey)
	adminHandler := handler.NewAdminOrderHandler(adminService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(zl))

	router.Post("/api/admin/login", authHandler.LoginAdmin())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Post("/api/admin/orders/{number}/paid", adminHandler.MarkOrderPaid())
		group.Post("/api/admin/orders/{number}/delivered", adminHandler.MarkOrderDelivered())
		group.Post("/api/admin/orders/{number}/cancel", adminHandler.CancelOrder())
		group.Patch("/api/admin/orders/{number}/email", adminHandler.UpdateOrderEmail())
		group.Delete("/api/admin/orders/{number}", adminHandler.DeleteOrder())
		group.Post("/api/admin/orders/batch-delete", adminHandler.BatchDeleteOrders())
		group.Post("/api/admin/orders/{number}/refund-status", adminHandler.VerifyOrderRefundStatus())
	})

	zl.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		zl.Fatal("Error starting server", zap.Error(err))
	}
}
