// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// content API. It organizes routes into operational endpoints and the
// rate-limited /api group.
package router

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"

	"zlendo/internal/handlers"
	"zlendo/internal/middleware"
)

// Deps are the handlers and middleware the router wires together. Limiter,
// Metrics and TrustedProxies are optional.
type Deps struct {
	Blog           *handlers.Blog
	Help           *handlers.Help
	Limiter        *middleware.RateLimiter
	Metrics        http.Handler
	TrustedProxies []netip.Prefix
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. RealIP runs first so the
	// logger and the limiter see the resolved client; RequestID next so the
	// logger and the recoverer can report the ID.
	r.Use(middleware.RealIP(d.TrustedProxies))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", healthHandler)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Middleware)
		}
		r.Route("/blog", d.Blog.Routes)
		r.Route("/help", d.Help.Routes)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
