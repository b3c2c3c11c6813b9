// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zlendo_content"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry         *prom.Registry
	upstreamRequests *prom.CounterVec
	upstreamDuration *prom.HistogramVec
	cacheLookups     *prom.CounterVec
	fallbacks        *prom.CounterVec
}

// NewPrometheusRecorder constructs the content metrics and registers them on
// reg. A nil reg gets a fresh registry that also carries the Go and process
// collectors.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	pr := &PrometheusRecorder{
		registry: reg,
		upstreamRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "WordPress requests by source, endpoint and outcome",
		}, []string{"source", "endpoint", "outcome"}),
		upstreamDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "WordPress request duration in seconds",
			Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		}, []string{"source", "endpoint"}),
		cacheLookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Revalidation cache lookups by source and result",
		}, []string{"source", "result"}),
		fallbacks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "fallbacks_total",
			Help:      "Empty or null results returned by query functions, by reason",
		}, []string{"source", "operation", "reason"}),
	}
	reg.MustRegister(pr.upstreamRequests, pr.upstreamDuration, pr.cacheLookups, pr.fallbacks)
	return pr
}

func (p *PrometheusRecorder) ObserveUpstream(source, endpoint, outcome string, d time.Duration) {
	p.upstreamRequests.WithLabelValues(source, endpoint, outcome).Inc()
	p.upstreamDuration.WithLabelValues(source, endpoint).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncCache(source string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(source, result).Inc()
}

func (p *PrometheusRecorder) IncFallback(source, operation, reason string) {
	p.fallbacks.WithLabelValues(source, operation, reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
