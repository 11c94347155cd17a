package kafka

import (
	"context"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/encoding/avro"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// EventHandler processes one decoded order-placed event.
type EventHandler func(ctx context.Context, evt avro.OrderPlacedEvent) error

// OrderEventConsumer reads OrderPlaced records and hands them to the
// configured handler. A record that fails to decode is logged and
// skipped rather than stopping the consumer.
type OrderEventConsumer struct {
	reader  *kafkago.Reader
	decoder *avro.Encoder
	handler EventHandler
	log     logger.Logger
}

func NewOrderEventConsumer(cfg config.KafkaConfig, handler EventHandler, log logger.Logger) (*OrderEventConsumer, error) {
	decoder, err := avro.NewEncoder(avro.OrderPlacedSchema)
	if err != nil {
		return nil, err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &OrderEventConsumer{
		reader:  reader,
		decoder: decoder,
		handler: handler,
		log:     log,
	}, nil
}

func (c *OrderEventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		record, err := c.decoder.DecodeNative(msg.Value)
		if err != nil {
			c.log.Warn("order event decode failed, skipping",
				logger.Int64("offset", msg.Offset),
				logger.Error(err))
			continue
		}
		evt, err := avro.OrderPlacedFromNative(record)
		if err != nil {
			c.log.Warn("order event malformed, skipping",
				logger.Int64("offset", msg.Offset),
				logger.Error(err))
			continue
		}

		if err := c.handler(ctx, evt); err != nil {
			return fmt.Errorf("handle order event %d: %w", evt.OrderID, err)
		}
	}
}

func (c *OrderEventConsumer) Close() {
	_ = c.reader.Close()
}
