package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/encoding/avro"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// OrderEventProducer publishes one Avro-encoded OrderPlaced record per
// successful checkout. Publishing is best-effort: the coordinator logs
// a failed publish and moves on.
type OrderEventProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	log     logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderEventProducer, error) {
	encoder, err := avro.NewEncoder(avro.OrderPlacedSchema)
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderTopic))

	return &OrderEventProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.OrderTopic,
		log:     log,
	}, nil
}

func (p *OrderEventProducer) OrderPlaced(ctx context.Context, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	payload, err := p.encoder.EncodeNative(avro.OrderPlacedNative(o, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *OrderEventProducer) Close() {
	p.client.Close()
}
