// Package metrics collects storefront metrics and exposes them to Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"vora/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus implementation of service.StorefrontMetrics.
type Collector struct {
	cartAdditions      prometheus.Counter
	checkoutsCompleted prometheus.Counter
	orderValue         prometheus.Counter
	trackingLookups    prometheus.Counter
	copywriterFallback *prometheus.CounterVec
	httpStatus         *prometheus.CounterVec
}

var _ service.StorefrontMetrics = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cartAdditions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vora_cart_additions_total",
			Help: "Products added to a cart.",
		}),
		checkoutsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vora_checkouts_completed_total",
			Help: "Checkouts that reached the confirmation step.",
		}),
		orderValue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vora_order_value_ngn_total",
			Help: "Sum of completed order totals in the base currency.",
		}),
		trackingLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vora_tracking_lookups_total",
			Help: "Order tracking lookups answered.",
		}),
		copywriterFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vora_ai_fallback_total",
			Help: "Copywriter calls answered with a fallback value.",
		}, []string{"operation"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vora_http_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.cartAdditions,
		c.checkoutsCompleted,
		c.orderValue,
		c.trackingLookups,
		c.copywriterFallback,
		c.httpStatus,
	)

	return c
}

// RecordCartAddition counts one product added to a cart.
func (c *Collector) RecordCartAddition(_ string) {
	c.cartAdditions.Inc()
}

// RecordCheckoutCompleted counts a completed checkout and its total.
func (c *Collector) RecordCheckoutCompleted(total int64) {
	c.checkoutsCompleted.Inc()
	c.orderValue.Add(float64(total))
}

// RecordTrackingLookup counts one answered tracking lookup.
func (c *Collector) RecordTrackingLookup() {
	c.trackingLookups.Inc()
}

// RecordCopywriterFallback counts a fallback answer for operation.
func (c *Collector) RecordCopywriterFallback(operation string) {
	c.copywriterFallback.WithLabelValues(operation).Inc()
}

// RecordHTTPStatus counts one HTTP response.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
