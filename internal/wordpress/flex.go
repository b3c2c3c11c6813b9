// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number, a numeric string, or anything else (as 0).
// Plugin fields such as BetterDocs' category order arrive as "3" or 3.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
	} else {
		s = string(data)
	}
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(v))
	}
	return nil
}

// FlexString decodes a JSON string; false, null, numbers and objects decode
// to "". PHP emits false for "no value" in many plugin fields.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	*f = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	*f = FlexString(s)
	return nil
}

// StringMap decodes a JSON object of strings; an empty PHP array ([]) or any
// other shape decodes to nil.
type StringMap map[string]string

func (m *StringMap) UnmarshalJSON(data []byte) error {
	*m = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	out := make(StringMap, len(raw))
	for k, v := range raw {
		var s FlexString
		_ = s.UnmarshalJSON(v)
		if s != "" {
			out[k] = string(s)
		}
	}
	*m = out
	return nil
}

func (d *MediaDetails) UnmarshalJSON(data []byte) error {
	*d = MediaDetails{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	type plain MediaDetails
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	*d = MediaDetails(p)
	return nil
}
