// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"errors"
	"fmt"

	"zlendo/internal/metrics"
)

// Kind classifies a fetch failure.
type Kind string

const (
	KindTransport Kind = "transport"
	KindStatus    Kind = "status"
	KindDecode    Kind = "decode"
)

// Error is returned by Client.Get for every failed fetch.
type Error struct {
	Kind       Kind
	Source     string
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("wordpress %s: GET %s: status %s", e.Source, e.URL, e.Status)
	case KindDecode:
		return fmt.Sprintf("wordpress %s: GET %s: decode: %v", e.Source, e.URL, e.Err)
	default:
		return fmt.Sprintf("wordpress %s: GET %s: %v", e.Source, e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// outcome maps the error onto a metrics outcome label.
func (e *Error) outcome() string {
	switch e.Kind {
	case KindStatus:
		return metrics.OutcomeStatus
	case KindDecode:
		return metrics.OutcomeDecode
	default:
		return metrics.OutcomeTransport
	}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var wpErr *Error
	if !errors.As(err, &wpErr) {
		return false
	}
	return wpErr.Kind == kind
}

// KindOf returns the kind of a *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var wpErr *Error
	if !errors.As(err, &wpErr) {
		return ""
	}
	return wpErr.Kind
}
