// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normal", input: "floor-plans", want: "floor-plans"},
		{name: "uppercase", input: "Floor-Plans", want: "floor-plans"},
		{name: "surrounding whitespace", input: "  open-plan  ", want: "open-plan"},
		{name: "inner spaces", input: "open plan\tliving", want: "open-plan-living"},
		{name: "double hyphens", input: "a--b---c", want: "a-b-c"},
		{name: "leading and trailing hyphens", input: "-draft-", want: "draft"},
		{name: "percent-encoded kept", input: "caf%C3%A9", want: "caf%c3%a9"},
		{name: "raw utf-8 encoded", input: "café", want: "caf%c3%a9"},
		{name: "uppercase utf-8 encoded", input: "CAFÉ Noir", want: "caf%c3%a9-noir"},
		{name: "cjk encoded", input: "日本", want: "%e6%97%a5%e6%9c%ac"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "open-plan-living", want: true},
		{input: "getting_started", want: true},
		{input: "2024-roundup", want: true},
		{input: "caf%c3%a9", want: true},
		{input: "", want: false},
		{input: "Upper", want: false},
		{input: "../etc/passwd", want: false},
		{input: "a b", want: false},
		{input: "slug?x=1", want: false},
		{input: "日本", want: false},
		{input: strings.Repeat("a", MaxLen), want: true},
		{input: strings.Repeat("a", MaxLen+1), want: false},
	}

	for _, tt := range tests {
		if got := Valid(tt.input); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestNormalizeThenValid verifies that every spelling of a non-ASCII slug
// normalizes to one valid stored form.
func TestNormalizeThenValid(t *testing.T) {
	for _, in := range []string{"café", "CAFÉ", "caf%C3%A9", "caf%c3%a9"} {
		got := Normalize(in)
		if got != "caf%c3%a9" || !Valid(got) {
			t.Errorf("Normalize(%q) = %q, valid %v", in, got, Valid(got))
		}
	}
}

// TestNormalizeIdempotent verifies that normalizing twice changes nothing.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "  --x--  ", "A  B  C", "kitchen-&-bath", "Café", "caf%C3%A9"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
