package server

// Prometheus metrics for the gateway, served at /metrics.
//
//   gateway_feed_total{source}     – feed responses by source tag
//   gateway_advice_total{source}   – recommendation responses by provenance
//   gateway_orders_total{status}   – order submissions by outcome

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	mtxFeed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_feed_total",
			Help: "Feed responses by source",
		},
		[]string{"source"},
	)

	mtxAdvice = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_advice_total",
			Help: "Recommendation responses by provenance tag",
		},
		[]string{"source"},
	)

	mtxOrders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_orders_total",
			Help: "Order submissions by outcome status",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(mtxFeed, mtxAdvice, mtxOrders)
}
