// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"time"

	"zlendo/internal/blog"
	"zlendo/internal/cache"
	"zlendo/internal/config"
	"zlendo/internal/helpcenter"
	"zlendo/internal/metrics"
	"zlendo/internal/wordpress"
)

// sweepInterval is how often the in-memory response cache drops expired
// entries.
const sweepInterval = time.Minute

// services are the two query-function sets sharing one cache and recorder.
type services struct {
	Blog *blog.Service
	Help *helpcenter.Service
}

func newServices(cfg *config.Config, store cache.Store, rec metrics.Recorder) services {
	blogClient := wordpress.NewClient(wordpress.Source{
		Name:       "blog",
		BaseURL:    cfg.WPBaseURL,
		Revalidate: cfg.WPRevalidate,
		Timeout:    cfg.UpstreamTimeout,
	}, wordpress.WithCache(store), wordpress.WithRecorder(rec))

	helpClient := wordpress.NewClient(wordpress.Source{
		Name:       "helpcenter",
		BaseURL:    cfg.HCBaseURL,
		Revalidate: cfg.HCRevalidate,
		Headers:    helpcenter.Headers(cfg.HCUserAgent, cfg.SiteURL),
		Timeout:    cfg.UpstreamTimeout,
	}, wordpress.WithCache(store), wordpress.WithRecorder(rec))

	return services{
		Blog: blog.NewService(blogClient),
		Help: helpcenter.NewService(helpClient),
	}
}

// openCache selects Valkey when configured and the in-memory store
// otherwise. The returned close function releases the backing connection.
func openCache(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	if cfg.UsesValkey() {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewValkeyStore(client), func() { client.Close() }, nil
	}

	mem := cache.NewMemoryStore()
	go mem.RunSweeper(ctx, sweepInterval)
	return mem, func() {}, nil
}
