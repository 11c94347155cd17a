package main

import (
	"log"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/application/checkout"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/application/notification"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/repository"
	ginserver "github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/http/gin"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/http/mailer"
	kafkainfra "github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/messaging/kafka"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/persistence/jsonfile"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/persistence/postgres"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/interfaces/http/handler"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/interfaces/http/router"
	applog "github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logger, err := applog.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logger.Sync()

	m := metrics.NewCheckoutMetrics(cfg.App.Name)

	var store repository.OrderStore
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(cfg.Store.DB)
		if err != nil {
			logger.Fatal("postgres connection failed", applog.Error(err))
		}
		defer pool.Close()
		store = postgres.NewOrderStore(pool, logger)
	default:
		store = jsonfile.NewStore(cfg.Store, logger)
	}

	var notifier notification.Notifier
	if cfg.Mail.Endpoint != "" {
		notifier = mailer.NewClient(cfg.Mail)
	} else {
		logger.Warn("EMAIL_ENDPOINT not set, notifications are simulated")
		notifier = mailer.NewLogNotifier(cfg.Mail.FromName, logger)
	}

	dispatcher := notification.NewDispatcher(cfg.Mail, notifier, logger, m)
	defer dispatcher.Close()

	var events checkout.EventPublisher
	if cfg.Kafka.Enabled() {
		producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka, logger)
		if err != nil {
			logger.Fatal("kafka producer failed", applog.Error(err))
		}
		defer producer.Close()
		events = producer
	}

	checkoutService := checkout.NewService(store, dispatcher, events, logger, m)

	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	ordersHandler := handler.NewOrdersHandler(store)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, checkoutHandler, ordersHandler)

	logger.Info("checkout service listening",
		applog.String("addr", cfg.Server.Address()),
		applog.String("store_backend", cfg.Store.Backend))

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		logger.Fatal("server run failed", applog.Error(err))
	}
}
