package notification

import (
	"context"
	"sync"
	"time"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/metrics"
)

// Notifier is the external transport that actually delivers a message.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Dispatcher builds the two checkout messages and delivers them on a
// detached worker pool. Dispatch returns immediately; delivery is
// at-most-once per recipient per checkout, and a failed delivery is
// logged and counted but never reported to the checkout path.
type Dispatcher struct {
	notifier   Notifier
	log        logger.Logger
	metrics    *metrics.CheckoutMetrics
	adminEmail string
	fromName   string
	timeout    time.Duration

	jobs   chan message
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewDispatcher(cfg config.MailConfig, notifier Notifier, log logger.Logger, m *metrics.CheckoutMetrics) *Dispatcher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		notifier:   notifier,
		log:        log,
		metrics:    m,
		adminEmail: cfg.AdminEmail,
		fromName:   cfg.FromName,
		timeout:    timeout,
		jobs:       make(chan message, workers*16),
		ctx:        ctx,
		cancel:     cancel,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Dispatch queues the customer and admin messages for o and returns
// without waiting for delivery.
func (d *Dispatcher) Dispatch(o *order.Order) {
	if o == nil {
		return
	}
	for _, msg := range buildMessages(o, d.adminEmail, d.fromName) {
		select {
		case d.jobs <- msg:
		case <-d.ctx.Done():
			return
		default:
			// The checkout path must never block on a slow notifier;
			// overflow is delivered on its own goroutine instead.
			d.wg.Add(1)
			go func(msg message) {
				defer d.wg.Done()
				d.deliver(msg)
			}(msg)
		}
	}
}

// Close stops the workers. Messages still queued at shutdown are
// abandoned; delivery is best-effort.
func (d *Dispatcher) Close() {
	d.cancel()
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case <-d.ctx.Done():
			return
		case msg := <-d.jobs:
			d.deliver(msg)
		}
	}
}

func (d *Dispatcher) deliver(msg message) {
	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	defer cancel()

	if err := d.notifier.Send(ctx, msg.to, msg.subject, msg.body); err != nil {
		d.metrics.NotificationObserved(msg.recipient, "failed")
		d.log.Warn("notification delivery failed",
			logger.String("recipient", msg.recipient),
			logger.String("to", msg.to),
			logger.String("subject", msg.subject),
			logger.Error(err))
		return
	}

	d.metrics.NotificationObserved(msg.recipient, "delivered")
	d.log.Info("notification delivered",
		logger.String("recipient", msg.recipient),
		logger.String("to", msg.to),
		logger.String("subject", msg.subject))
}
