// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts served requests by route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macflix_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks handler latency. Streams run long; the
	// buckets reach into minutes.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "macflix_http_request_duration_seconds",
		Help:    "HTTP handler duration by route",
		Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 5, 30, 120, 600},
	}, []string{"method", "route"})

	// DeliveriesTotal counts media delivery outcomes.
	DeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macflix_deliveries_total",
		Help: "Media deliveries by intent, locator locality and result",
	}, []string{"intent", "locality", "result"})

	// RelayBytesTotal counts media bytes written to clients.
	RelayBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macflix_relay_bytes_total",
		Help: "Media bytes relayed to clients by locator locality",
	}, []string{"locality"})

	// RelayAbortsTotal counts relays cut short after headers were sent.
	RelayAbortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macflix_relay_aborts_total",
		Help: "Relays terminated mid-stream by locator locality",
	}, []string{"locality"})

	// ProbeDuration tracks remote content-type probes.
	ProbeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "macflix_probe_duration_seconds",
		Help:    "Remote origin probe duration by result",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"result"})

	// CatalogReloadsTotal counts catalog rebuilds.
	CatalogReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macflix_catalog_reloads_total",
		Help: "Catalog reload attempts by result",
	}, []string{"result"})

	// CatalogRecords is the record count of the live catalog.
	CatalogRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "macflix_catalog_records",
		Help: "Records in the currently served catalog",
	})

	// MetadataRequestsTotal counts calls to external metadata providers.
	MetadataRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macflix_metadata_requests_total",
		Help: "External metadata lookups by provider and result",
	}, []string{"provider", "result"})
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveDelivery records a delivery outcome. result is "ok" or a failure reason.
func ObserveDelivery(intent, locality, result string) {
	DeliveriesTotal.WithLabelValues(intent, locality, result).Inc()
}

// ObserveRelay records bytes written by a relay and whether it was cut short.
func ObserveRelay(locality string, n int64, aborted bool) {
	RelayBytesTotal.WithLabelValues(locality).Add(float64(n))
	if aborted {
		RelayAbortsTotal.WithLabelValues(locality).Inc()
	}
}

// ObserveProbe records a remote probe.
func ObserveProbe(ok bool, d time.Duration) {
	result := "ok"
	if !ok {
		result = "error"
	}
	ProbeDuration.WithLabelValues(result).Observe(d.Seconds())
}

// ObserveCatalogReload records a reload attempt and, on success, the new size.
func ObserveCatalogReload(records int, err error) {
	if err != nil {
		CatalogReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	CatalogReloadsTotal.WithLabelValues("ok").Inc()
	CatalogRecords.Set(float64(records))
}

// ObserveMetadata records an external metadata call.
func ObserveMetadata(provider string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	MetadataRequestsTotal.WithLabelValues(provider, result).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
