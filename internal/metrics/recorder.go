// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics records what happens between the content service and its
// WordPress upstreams: request outcomes, cache hits, and the fallbacks the
// query layer substitutes when an upstream is down or a lookup comes back
// empty. Callers never see these distinctions; operators do.
package metrics

import "time"

// Upstream request outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeStatus    = "http_error"
	OutcomeDecode    = "decode_error"
)

// Fallback reasons recorded by the query layer.
const (
	ReasonUpstream = "upstream_error"
	ReasonNotFound = "not_found"
	ReasonPartial  = "partial"
)

// Recorder receives observations from the fetch client and the query layer.
type Recorder interface {
	ObserveUpstream(source, endpoint, outcome string, d time.Duration)
	IncCache(source string, hit bool)
	IncFallback(source, operation, reason string)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveUpstream(string, string, string, time.Duration) {}
func (Nop) IncCache(string, bool)                                 {}
func (Nop) IncFallback(string, string, string)                    {}
