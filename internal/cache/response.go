// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed store for upstream responses.
// A fetched WordPress response is stored under its URL so requests inside
// the revalidation window skip the network round-trip entirely.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// responseKeyPrefix is the Valkey key prefix for cached upstream responses.
const responseKeyPrefix = "wp:"

// ValkeyStore manages upstream response caching in Valkey.
type ValkeyStore struct {
	client *redis.Client
}

// NewValkeyStore creates a new response store backed by the given Valkey client.
func NewValkeyStore(client *redis.Client) *ValkeyStore {
	return &ValkeyStore{client: client}
}

// Get retrieves a cached response. Returns false on miss or backend error.
func (s *ValkeyStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := s.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores a response for ttl. A non-positive ttl stores nothing.
func (s *ValkeyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := s.client.Set(ctx, responseKeyPrefix+key, value, ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Delete removes a single cached response.
func (s *ValkeyStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, responseKeyPrefix+key).Err(); err != nil {
		slog.Warn("response cache delete error", "key", key, "error", err)
	}
}

// Clear removes all cached responses by scanning for the prefix and returns
// how many were deleted. Other keys in the database are left alone.
func (s *ValkeyStore) Clear(ctx context.Context) (int, error) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, responseKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("scan response cache: %w", err)
		}
		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("delete cached responses: %w", err)
			}
			deleted += int(n)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	slog.Info("response cache cleared", "deleted", deleted)
	return deleted, nil
}
