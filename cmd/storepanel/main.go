package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/denzstore/storepanel/config"
	handler "github.com/denzstore/storepanel/internal/handler/http"
	"github.com/denzstore/storepanel/internal/logger"
	"github.com/denzstore/storepanel/internal/middleware"
	"github.com/denzstore/storepanel/internal/payment"
	"github.com/denzstore/storepanel/internal/remoteconfig"
	"github.com/denzstore/storepanel/internal/repository"
	"github.com/denzstore/storepanel/internal/service"
	"github.com/denzstore/storepanel/internal/upstream"
	"github.com/denzstore/storepanel/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// initialize order store
	var orderRepo service.OrderRepository
	if cfg.OrdersFile != "" {
		fileRepo, err := repository.NewFileOrderRepository(cfg.OrdersFile)
		if err != nil {
			logger.Log.Fatal("Error opening orders file", zap.Error(err))
		}
		orderRepo = fileRepo
	} else {
		orderRepo = repository.NewOrderRepository()
	}

	ledgerRepo := repository.NewLedgerRepository()

	// remote credentials, refreshed in background
	credsProvider := remoteconfig.New(cfg.ConfigURL)
	refresher := worker.NewConfigRefresher(credsProvider, cfg.RefreshInterval)
	go refresher.Run(ctx)

	// outbound clients
	upstreamClient := upstream.NewClient(cfg.UpstreamAddr)
	paymentClient := payment.NewClient(cfg.PaymentAddr)

	// dependency injection
	// catalog
	catalogService := service.NewCatalogService(upstreamClient, credsProvider)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// order
	orderService := service.NewOrderService(orderRepo, upstreamClient, paymentClient, credsProvider)
	orderHandler := handler.NewOrderHandler(orderService)

	// webhook
	webhookService := service.NewWebhookService(orderRepo, ledgerRepo)
	webhookHandler := handler.NewWebhookHandler(webhookService)

	// balance
	balanceService := service.NewBalanceService(ledgerRepo)
	balanceHandler := handler.NewBalanceHandler(balanceService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	router.Get("/catalog", catalogHandler.ListServices())
	router.Post("/order", orderHandler.CreateOrder())
	router.Get("/orders", orderHandler.ListOrders())
	router.Get("/testimonials", orderHandler.Testimonials())
	router.Get("/balances", balanceHandler.ListBalances())
	router.Post("/webhook/payment", webhookHandler.PaymentNotification())

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
