// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package wptest provides a fake WordPress REST upstream and an in-memory
// metrics recorder for tests of packages built on wordpress.Client.
package wptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// Reply is one canned upstream answer. Total and TotalPages become the
// X-WP-Total and X-WP-TotalPages headers; Status defaults to 200.
type Reply struct {
	Status     int
	Total      int
	TotalPages int
	Body       any
}

// Rows answers with a single page holding rows.
func Rows(rows ...map[string]any) Reply {
	if rows == nil {
		rows = []map[string]any{}
	}
	n := len(rows)
	pages := 1
	if n == 0 {
		pages = 0
	}
	return Reply{Total: n, TotalPages: pages, Body: rows}
}

// Fail answers with status and a WordPress-style error body.
func Fail(status int) Reply {
	return Reply{Status: status, Body: map[string]any{"code": "rest_error", "message": http.StatusText(status)}}
}

// HandlerFunc answers a request for one endpoint given its query.
type HandlerFunc func(q url.Values) Reply

// Server is a fake WordPress /wp-json/wp/v2 root.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	requests []*url.URL
	headers  []http.Header
}

// NewServer starts a fake upstream that is closed when the test ends.
// Unregistered endpoints answer 404 rest_no_route.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{handlers: map[string]HandlerFunc{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers fn for endpoint ("posts", "categories", ...).
func (s *Server) Handle(endpoint string, fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers["/"+strings.Trim(endpoint, "/")] = fn
}

// Reply registers a fixed answer for endpoint.
func (s *Server) Reply(endpoint string, r Reply) {
	s.Handle(endpoint, func(url.Values) Reply { return r })
}

// Requests returns the queries received for endpoint, in order.
func (s *Server) Requests(endpoint string) []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := "/" + strings.Trim(endpoint, "/")
	var out []url.Values
	for _, u := range s.requests {
		if u.Path == path {
			out = append(out, u.Query())
		}
	}
	return out
}

// LastHeader returns the headers of the most recent request.
func (s *Server) LastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.headers) == 0 {
		return nil
	}
	return s.headers[len(s.headers)-1]
}

// RequestCount returns the number of requests received on any endpoint.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL)
	s.headers = append(s.headers, r.Header.Clone())
	fn, ok := s.handlers[r.URL.Path]
	s.mu.Unlock()

	reply := Reply{Status: http.StatusNotFound, Body: map[string]any{"code": "rest_no_route"}}
	if ok {
		reply = fn(r.URL.Query())
	}
	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if reply.Status < 300 {
		w.Header().Set("X-WP-Total", strconv.Itoa(reply.Total))
		w.Header().Set("X-WP-TotalPages", strconv.Itoa(reply.TotalPages))
	}
	w.WriteHeader(reply.Status)
	switch body := reply.Body.(type) {
	case nil:
	case string:
		fmt.Fprint(w, body)
	default:
		json.NewEncoder(w).Encode(body)
	}
}

// Paged serves rows in pages of per_page with accurate pagination headers.
// A page past the end answers 400, as WordPress does.
func Paged(rows []map[string]any) HandlerFunc {
	return func(q url.Values) Reply {
		perPage, _ := strconv.Atoi(q.Get("per_page"))
		if perPage < 1 {
			perPage = 10
		}
		page, _ := strconv.Atoi(q.Get("page"))
		if page < 1 {
			page = 1
		}
		totalPages := (len(rows) + perPage - 1) / perPage
		if page > totalPages && page > 1 {
			return Reply{Status: http.StatusBadRequest, Body: map[string]any{"code": "rest_post_invalid_page_number"}}
		}
		start := (page - 1) * perPage
		end := min(start+perPage, len(rows))
		out := []map[string]any{}
		if start < end {
			out = rows[start:end]
		}
		return Reply{Total: len(rows), TotalPages: totalPages, Body: out}
	}
}

// Recorder is a metrics.Recorder that keeps counts in memory.
type Recorder struct {
	mu        sync.Mutex
	fallbacks map[string]int
	upstream  map[string]int
	hits      int
	misses    int
}

func NewRecorder() *Recorder {
	return &Recorder{fallbacks: map[string]int{}, upstream: map[string]int{}}
}

func (r *Recorder) ObserveUpstream(source, endpoint, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upstream[outcome]++
}

func (r *Recorder) IncCache(_ string, hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func (r *Recorder) IncFallback(_, operation, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbacks[operation+"/"+reason]++
}

// Fallbacks returns how often operation fell back for reason.
func (r *Recorder) Fallbacks(operation, reason string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallbacks[operation+"/"+reason]
}

// TotalFallbacks returns the number of fallbacks of any kind.
func (r *Recorder) TotalFallbacks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.fallbacks {
		n += c
	}
	return n
}

// Upstream returns how many upstream requests ended with outcome.
func (r *Recorder) Upstream(outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upstream[outcome]
}
