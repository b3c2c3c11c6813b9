// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zlendo/internal/blog"
	"zlendo/internal/handlers"
	"zlendo/internal/helpcenter"
	"zlendo/internal/metrics"
	"zlendo/internal/middleware"
	"zlendo/internal/seo"
	"zlendo/internal/wordpress"
	"zlendo/internal/wordpress/wptest"
)

type fixture struct {
	handler http.Handler
	blog    *wptest.Server
}

func newFixture(t *testing.T, limiter *middleware.RateLimiter) *fixture {
	t.Helper()
	blogSrv := wptest.NewServer(t)
	helpSrv := wptest.NewServer(t)
	rec := metrics.NewPrometheusRecorder(prom.NewRegistry())
	gen := seo.NewGenerator("https://zlendorealty.com", "Zlendo")

	blogClient := wordpress.NewClient(wordpress.Source{Name: "blog", BaseURL: blogSrv.URL, Revalidate: time.Hour}, wordpress.WithRecorder(rec))
	helpClient := wordpress.NewClient(wordpress.Source{Name: "helpcenter", BaseURL: helpSrv.URL, Revalidate: time.Hour}, wordpress.WithRecorder(rec))

	return &fixture{
		handler: New(Deps{
			Blog:    handlers.NewBlog(blog.NewService(blogClient), gen),
			Help:    handlers.NewHelp(helpcenter.NewService(helpClient), gen),
			Limiter: limiter,
			Metrics: rec.Handler(),
		}),
		blog: blogSrv,
	}
}

func (f *fixture) do(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestGlobalMiddleware(t *testing.T) {
	f := newFixture(t, nil)

	w := f.do(http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	f := newFixture(t, nil)

	w := f.do(http.MethodGet, "/wp-admin")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())

	w = f.do(http.MethodPost, "/api/blog/posts")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"method not allowed"}`, w.Body.String())
}

func TestAPIRoutesMounted(t *testing.T) {
	f := newFixture(t, nil)
	f.blog.Reply("posts", wptest.Rows())

	for _, target := range []string{"/api/blog/posts", "/api/help/faqs", "/api/help/categories"} {
		w := f.do(http.MethodGet, target)
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestMetricsEndpointReportsFallbacks(t *testing.T) {
	f := newFixture(t, nil)
	f.blog.Reply("posts", wptest.Fail(http.StatusInternalServerError))

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/blog/posts").Code)

	w := f.do(http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `zlendo_content_query_fallbacks_total{operation="posts",reason="`+metrics.ReasonUpstream+`",source="blog"} 1`)
	assert.Contains(t, w.Body.String(), "zlendo_content_upstream_requests_total")
}

func TestRateLimitAppliesToAPIOnly(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	t.Cleanup(limiter.Stop)
	f := newFixture(t, limiter)
	f.blog.Reply("tags", wptest.Rows())

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/blog/tags").Code)

	// A rotated X-Forwarded-For from an untrusted peer is the same client.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blog/tags", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.99")
	f.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health").Code)
}
