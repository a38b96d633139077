/*
Package metric 提供 Prometheus 指标：HTTP 请求、订单创建与通知发送。
*/
package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status class",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"method", "route", "status"},
	)

	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bakery_orders_created_total",
			Help: "Total number of orders created by order type",
		},
		[]string{"type"},
	)

	notificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bakery_order_notifications_total",
			Help: "Total number of order notifications by sink and result",
		},
		[]string{"sink", "result"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		ordersCreated,
		notificationsSent,
	)
}

// StatusClass groups HTTP status codes as 2xx, 3xx, 4xx or 5xx
func StatusClass(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "5xx"
	case status >= http.StatusBadRequest:
		return "4xx"
	case status >= http.StatusMultipleChoices:
		return "3xx"
	default:
		return "2xx"
	}
}

// RecordHTTPRequest route is the gin route template, never the raw path
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	class := StatusClass(status)
	httpRequests.WithLabelValues(method, route, class).Inc()
	httpDuration.WithLabelValues(method, route, class).Observe(duration.Seconds())
}

func RecordOrderCreated(orderType string) {
	ordersCreated.WithLabelValues(orderType).Inc()
}

func RecordNotification(sink string, err error) {
	notificationsSent.WithLabelValues(sink, strconv.FormatBool(err == nil)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
