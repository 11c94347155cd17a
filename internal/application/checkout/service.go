package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/repository"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/metrics"
)

// Dispatcher triggers the post-checkout notifications. It must return
// without waiting for delivery.
type Dispatcher interface {
	Dispatch(o *order.Order)
}

// EventPublisher emits an order-placed event to the event pipeline.
type EventPublisher interface {
	OrderPlaced(ctx context.Context, o *order.Order) error
}

// SubmitOrderCommand is the checkout request body.
type SubmitOrderCommand struct {
	Customer order.Customer    `json:"customer"`
	Items    []order.OrderItem `json:"items"`
}

// Service coordinates one checkout: validate, assign the next id,
// persist, then trigger notifications as a detached side effect.
type Service struct {
	store      repository.OrderStore
	dispatcher Dispatcher
	events     EventPublisher // optional
	log        logger.Logger
	metrics    *metrics.CheckoutMetrics

	// The load-compute-append sequence is one logical transaction;
	// the mutex serializes it against concurrent submissions in this
	// process. The retry loop below covers writers in other processes
	// racing on the same backing store.
	mu sync.Mutex
}

const (
	submitAttempts      = 3
	eventPublishTimeout = 5 * time.Second
)

func NewService(store repository.OrderStore, dispatcher Dispatcher, events EventPublisher, log logger.Logger, m *metrics.CheckoutMetrics) *Service {
	return &Service{
		store:      store,
		dispatcher: dispatcher,
		events:     events,
		log:        log,
		metrics:    m,
	}
}

// Submit validates and persists the order, returning its assigned id.
// Notification and event failures never affect the result: checkout
// success is defined solely by successful persistence.
func (s *Service) Submit(ctx context.Context, cmd SubmitOrderCommand) (int64, error) {
	if err := order.ValidateSubmission(cmd.Customer, cmd.Items); err != nil {
		s.metrics.CheckoutObserved("rejected")
		return 0, err
	}

	o, err := s.persist(ctx, cmd)
	if err != nil {
		s.metrics.CheckoutObserved("failed")
		return 0, err
	}

	s.metrics.CheckoutObserved("success")
	s.log.Info("order persisted",
		logger.Int64("order_id", o.ID),
		logger.String("customer_id", o.Customer.StudentID),
		logger.Int("item_count", len(o.Items)))

	s.dispatcher.Dispatch(o)
	s.publishEvent(o)

	return o.ID, nil
}

func (s *Service) persist(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lastErr error
	for attempt := 1; attempt <= submitAttempts; attempt++ {
		existing := s.store.Load(ctx)
		next := int64(1)
		for _, e := range existing {
			if e.ID >= next {
				next = e.ID + 1
			}
		}

		o, err := order.New(next, cmd.Customer, cmd.Items)
		if err != nil {
			return nil, err
		}

		if err := s.store.Append(ctx, o); err != nil {
			if errors.Is(err, order.ErrIDConflict) {
				// Another writer took the id; recompute and try again.
				s.log.Warn("order id conflict, retrying",
					logger.Int64("order_id", o.ID),
					logger.Int("attempt", attempt))
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("persist order: %w", err)
		}
		return o, nil
	}
	return nil, fmt.Errorf("assign order id after %d attempts: %w", submitAttempts, lastErr)
}

func (s *Service) publishEvent(o *order.Order) {
	if s.events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), eventPublishTimeout)
		defer cancel()
		if err := s.events.OrderPlaced(ctx, o); err != nil {
			s.log.Warn("order event publish failed",
				logger.Int64("order_id", o.ID),
				logger.Error(err))
		}
	}()
}
