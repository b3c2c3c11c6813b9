// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package wordpress talks to WordPress REST APIs (/wp-json/wp/v2). It holds
// the fetch client with its revalidation cache, the permissive raw payload
// types, the text helpers shared by the transformers, and a generic adapter
// for a post type with its category and tag taxonomies.
package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"zlendo/internal/cache"
	"zlendo/internal/metrics"
)

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 15 * time.Second

// Source describes one upstream WordPress installation.
type Source struct {
	Name       string            // "blog" or "helpcenter"; used in logs, metrics and cache keys
	BaseURL    string            // including /wp-json/wp/v2
	Revalidate time.Duration     // how long a response may be served from cache
	Headers    map[string]string // extra request headers
	Timeout    time.Duration
}

// Page holds the pagination totals WordPress sends as headers.
type Page struct {
	Total      int
	TotalPages int
}

// Response is what a successful Get returns besides the decoded body.
type Response struct {
	Header http.Header
	Page   Page
	Cached bool
}

// Client performs GETs against one Source. It is safe for concurrent use
// and holds no mutable state of its own.
type Client struct {
	source  Source
	http    *http.Client
	cache   cache.Store
	metrics metrics.Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache enables the revalidation cache.
func WithCache(s cache.Store) Option {
	return func(c *Client) { c.cache = s }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Client) { c.metrics = r }
}

// NewClient creates a client for src. Without options it does not cache and
// discards metrics.
func NewClient(src Source, opts ...Option) *Client {
	src.BaseURL = strings.TrimRight(src.BaseURL, "/")
	if src.Timeout <= 0 {
		src.Timeout = DefaultTimeout
	}
	c := &Client{
		source:  src,
		http:    &http.Client{Timeout: src.Timeout},
		cache:   cache.Nop{},
		metrics: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the client's upstream description.
func (c *Client) Source() Source {
	return c.source
}

// cachedResponse is the stored form of a successful fetch.
type cachedResponse struct {
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
	Body       json.RawMessage `json:"body"`
}

// Get fetches endpoint with query and decodes the JSON body into out.
// Transport failures, non-2xx statuses and undecodable bodies are logged
// and returned as *Error; nothing is suppressed here.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) (*Response, error) {
	fullURL := c.url(endpoint, query)
	label := endpointLabel(endpoint)

	if c.source.Revalidate > 0 {
		if resp, ok := c.fromCache(ctx, fullURL, out); ok {
			c.metrics.IncCache(c.source.Name, true)
			return resp, nil
		}
		c.metrics.IncCache(c.source.Name, false)
	}

	start := time.Now()
	resp, body, err := c.do(ctx, fullURL)
	if err == nil {
		if decodeErr := json.Unmarshal(body, out); decodeErr != nil {
			err = &Error{Kind: KindDecode, Source: c.source.Name, URL: fullURL, Err: decodeErr}
		}
	}
	if err != nil {
		wpErr := err.(*Error)
		c.metrics.ObserveUpstream(c.source.Name, label, wpErr.outcome(), time.Since(start))
		slog.Warn("wordpress fetch failed",
			"source", c.source.Name,
			"url", fullURL,
			"kind", wpErr.Kind,
			"status", wpErr.StatusCode,
			"error", wpErr.Err,
		)
		return nil, err
	}
	c.metrics.ObserveUpstream(c.source.Name, label, metrics.OutcomeOK, time.Since(start))

	page := parsePage(resp.Header)
	if c.source.Revalidate > 0 {
		c.toCache(ctx, fullURL, page, body)
	}
	return &Response{Header: resp.Header, Page: page}, nil
}

// do performs the request and reads the body. The returned error is always
// a *Error.
func (c *Client) do(ctx context.Context, fullURL string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, nil, &Error{Kind: KindTransport, Source: c.source.Name, URL: fullURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.source.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &Error{Kind: KindTransport, Source: c.source.Name, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, &Error{
			Kind:       KindStatus,
			Source:     c.source.Name,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: KindTransport, Source: c.source.Name, URL: fullURL, Err: fmt.Errorf("read body: %w", err)}
	}
	return resp, body, nil
}

func (c *Client) fromCache(ctx context.Context, fullURL string, out any) (*Response, bool) {
	raw, ok := c.cache.Get(ctx, c.cacheKey(fullURL))
	if !ok {
		return nil, false
	}
	var entry cachedResponse
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.cache.Delete(ctx, c.cacheKey(fullURL))
		return nil, false
	}
	if err := json.Unmarshal(entry.Body, out); err != nil {
		c.cache.Delete(ctx, c.cacheKey(fullURL))
		return nil, false
	}
	page := Page{Total: entry.Total, TotalPages: entry.TotalPages}
	return &Response{Header: pageHeader(page), Page: page, Cached: true}, true
}

func (c *Client) toCache(ctx context.Context, fullURL string, page Page, body []byte) {
	raw, err := json.Marshal(cachedResponse{Total: page.Total, TotalPages: page.TotalPages, Body: body})
	if err != nil {
		return
	}
	c.cache.Set(ctx, c.cacheKey(fullURL), raw, c.source.Revalidate)
}

func (c *Client) cacheKey(fullURL string) string {
	return c.source.Name + ":" + fullURL
}

func (c *Client) url(endpoint string, query url.Values) string {
	u := c.source.BaseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// endpointLabel keeps metric cardinality low: "posts", "categories", ...
func endpointLabel(endpoint string) string {
	endpoint = strings.Trim(endpoint, "/")
	if i := strings.IndexByte(endpoint, '/'); i >= 0 {
		endpoint = endpoint[:i]
	}
	return endpoint
}

// parsePage reads X-WP-Total and X-WP-TotalPages. Missing or malformed
// headers count as 0.
func parsePage(h http.Header) Page {
	return Page{
		Total:      headerInt(h, "X-WP-Total"),
		TotalPages: headerInt(h, "X-WP-TotalPages"),
	}
}

func headerInt(h http.Header, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(h.Get(key)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func pageHeader(p Page) http.Header {
	h := make(http.Header)
	h.Set("X-WP-Total", strconv.Itoa(p.Total))
	h.Set("X-WP-TotalPages", strconv.Itoa(p.TotalPages))
	return h
}
