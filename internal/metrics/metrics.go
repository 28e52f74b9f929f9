// Package metrics defines the prometheus collectors of the website.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Reveal controller metrics
	Reveals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_reveals_total",
		Help: "Total number of elements revealed, by reveal id",
	}, []string{"element"})

	Navigations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_navigations_total",
		Help: "Total number of section navigations, by section and result (found, unknown)",
	}, []string{"section", "result"})

	// Live bridge metrics
	LiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_live_sessions",
		Help: "Number of open live sessions",
	})

	LiveEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_live_events_total",
		Help: "Total number of live bridge events received, by type and result",
	}, []string{"type", "result"})

	// Contact form metrics
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_contact_submissions_total",
		Help: "Total number of contact form submissions, by result",
	}, []string{"result"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// NavigationResult labels a navigation outcome.
func NavigationResult(found bool) string {
	if found {
		return "found"
	}
	return "unknown"
}
