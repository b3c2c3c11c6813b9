// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := map[string]int{
		`3`:       3,
		`"3"`:     3,
		`" 12 "`:  12,
		`"2.0"`:   2,
		`4.7`:     4,
		`""`:      0,
		`null`:    0,
		`false`:   0,
		`"first"`: 0,
		`{}`:      0,
	}
	for raw, want := range tests {
		var got struct {
			Order FlexInt `json:"order"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"order":`+raw+`}`), &got), raw)
		assert.Equal(t, FlexInt(want), got.Order, raw)
	}
}

func TestFlexString(t *testing.T) {
	tests := map[string]string{
		`"https://x.test/i.png"`: "https://x.test/i.png",
		`false`:                  "",
		`null`:                   "",
		`42`:                     "",
		`{"url":"x"}`:            "",
	}
	for raw, want := range tests {
		var got struct {
			Thumbnail FlexString `json:"thumbnail"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"thumbnail":`+raw+`}`), &got), raw)
		assert.Equal(t, FlexString(want), got.Thumbnail, raw)
	}
}

func TestStringMap(t *testing.T) {
	var m StringMap
	require.NoError(t, json.Unmarshal([]byte(`{"24":"a","48":false,"96":"c"}`), &m))
	assert.Equal(t, StringMap{"24": "a", "96": "c"}, m)

	require.NoError(t, json.Unmarshal([]byte(`[]`), &m))
	assert.Nil(t, m)
}

func TestTermDecodesBetterDocsFields(t *testing.T) {
	var term Term
	raw := `{"id":12,"name":"Billing","slug":"billing","parent":3,"count":4,"order":"2","thumbnail":false,"taxonomy":"doc_category"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &term))

	assert.Equal(t, 12, term.ID)
	assert.Equal(t, 3, term.Parent)
	assert.Equal(t, FlexInt(2), term.Order)
	assert.Equal(t, FlexString(""), term.Thumbnail)
}
