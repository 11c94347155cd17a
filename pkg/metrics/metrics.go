package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckoutMetrics counts checkout submissions and notification delivery
// attempts. A nil *CheckoutMetrics is valid and records nothing, so
// tests can pass nil instead of wiring a registry.
type CheckoutMetrics struct {
	Checkouts     *prometheus.CounterVec
	Notifications *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout counters on the default
// prometheus registry.
func NewCheckoutMetrics(service string) *CheckoutMetrics {
	return NewCheckoutMetricsWith(prometheus.DefaultRegisterer, service)
}

// NewCheckoutMetricsWith registers the checkout counters on the given
// registerer.
func NewCheckoutMetricsWith(reg prometheus.Registerer, service string) *CheckoutMetrics {
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardshop",
		Subsystem: service,
		Name:      "checkouts_total",
		Help:      "Total number of checkout submissions.",
	}, []string{"status"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardshop",
		Subsystem: service,
		Name:      "notifications_total",
		Help:      "Total number of notification delivery attempts.",
	}, []string{"recipient", "status"})

	reg.MustRegister(checkouts, notifications)
	return &CheckoutMetrics{Checkouts: checkouts, Notifications: notifications}
}

// CheckoutObserved records the outcome of one checkout submission.
func (m *CheckoutMetrics) CheckoutObserved(status string) {
	if m == nil {
		return
	}
	m.Checkouts.WithLabelValues(status).Inc()
}

// NotificationObserved records the outcome of one delivery attempt.
func (m *CheckoutMetrics) NotificationObserved(recipient, status string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(recipient, status).Inc()
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
