package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marquee_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// RequestDuration observes request latency by method and path
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "marquee_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// TicketsSold counts confirmed ticket sales
	TicketsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marquee_tickets_sold_total",
		Help: "Total number of tickets sold",
	})

	// SalesRejected counts rejected sale attempts by error kind
	SalesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marquee_sales_rejected_total",
		Help: "Total number of rejected sale attempts",
	}, []string{"kind"})
)
