// Package metrics exposes Prometheus collectors for the crawl engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesTotal      *prometheus.CounterVec
	documentsTotal  prometheus.Counter
	linksTotal      prometheus.Counter
	frontierPending prometheus.Gauge

	once sync.Once
)

// Page outcome labels.
const (
	PageCrawled  = "crawled"
	PageExternal = "external"
	PageEmpty    = "empty"
)

// Init registers the collectors. Safe to call multiple times.
func Init() {
	once.Do(func() {
		pagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spinneret_pages_total",
				Help: "Total number of URIs popped from the frontier, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		documentsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "spinneret_documents_total",
				Help: "Total number of deduplicated documents yielded by content processors.",
			},
		)

		linksTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "spinneret_links_total",
				Help: "Total number of deduplicated URIs yielded by link processors.",
			},
		)

		frontierPending = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "spinneret_frontier_pending",
				Help: "Number of URIs currently pending in the frontier.",
			},
		)
	})
}

// ObservePage records the outcome of one popped URI.
func ObservePage(outcome string) {
	if pagesTotal != nil {
		pagesTotal.WithLabelValues(outcome).Inc()
	}
}

// AddDocuments records documents yielded for one page.
func AddDocuments(n int) {
	if documentsTotal != nil {
		documentsTotal.Add(float64(n))
	}
}

// AddLinks records URIs yielded for one page.
func AddLinks(n int) {
	if linksTotal != nil {
		linksTotal.Add(float64(n))
	}
}

// SetFrontierPending publishes the current frontier length.
func SetFrontierPending(n int) {
	if frontierPending != nil {
		frontierPending.Set(float64(n))
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
