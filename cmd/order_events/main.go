package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/encoding/avro"
	kafkainfra "github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/messaging/kafka"
	applog "github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// Audit tail for the order event stream: consumes every OrderPlaced
// record and writes one structured log line per order.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_BOOTSTRAP_SERVERS is empty")
	}

	logger, err := applog.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := kafkainfra.NewOrderEventConsumer(cfg.Kafka, func(ctx context.Context, evt avro.OrderPlacedEvent) error {
		logger.Info("order placed",
			applog.Int64("order_id", evt.OrderID),
			applog.String("customer_id", evt.CustomerID),
			applog.String("customer_email", evt.CustomerEmail),
			applog.Int("item_count", evt.ItemCount),
			applog.String("placed_at", evt.PlacedAt.String()))
		return nil
	}, logger)
	if err != nil {
		logger.Fatal("kafka consumer failed", applog.Error(err))
	}
	defer consumer.Close()

	logger.Info("order event consumer started",
		applog.Any("brokers", cfg.Kafka.Brokers),
		applog.String("topic", cfg.Kafka.OrderTopic))

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("consumer stopped", applog.Error(err))
	}
}
