// Package coerce converts loosely-typed JSON values into the structured
// types the host's property system expects (vectors, rotators, colors,
// margins, scalars) and back into the host's textual property format.
// Input is permissive: many shapes are accepted per target type. Output is
// exact: one canonical property string per type.
package coerce

// Copyright (C) 2025 Rizome Labs, Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// ParseString interprets raw parameter text as a JSON value. It never
// fails: empty text stays an empty string; text shaped like a JSON
// fragment is parsed when valid; boolean words (true/false/yes/no) and
// null are recognized case-insensitively; numeric text becomes a number;
// anything else degrades to the string itself.
func ParseString(text string) interface{} {
	if text == "" {
		return ""
	}
	trimmed := strings.TrimSpace(text)
	if looksLikeJSON(trimmed) {
		var v interface{}
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}
	switch {
	case strings.EqualFold(trimmed, "true"), strings.EqualFold(trimmed, "yes"):
		return true
	case strings.EqualFold(trimmed, "false"), strings.EqualFold(trimmed, "no"):
		return false
	case strings.EqualFold(trimmed, "null"):
		return nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return text
}

func looksLikeJSON(s string) bool {
	if len(s) < 2 {
		return false
	}
	switch {
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return true
	case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
		return true
	case strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`):
		return true
	}
	return false
}

// Normalize re-parses string values until they stop changing, so
// doubly-encoded parameters ("\"[1,2]\"" and friends) resolve to the
// value they encode. Non-string values pass through unchanged.
// Normalize(Normalize(v)) == Normalize(v) for every v.
func Normalize(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}
	for {
		parsed := ParseString(s)
		next, isString := parsed.(string)
		if !isString || next == s {
			return parsed
		}
		s = next
	}
}

// Bool converts a scalar to bool. Numbers convert by zero/nonzero,
// strings through the fixed vocabulary true/yes/1/on and false/no/0/off.
func Bool(v interface{}) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "1", "on":
			return true, true
		case "false", "no", "0", "off":
			return false, true
		}
		return false, false
	}
	if n, ok := Number(v); ok {
		return n != 0, true
	}
	return false, false
}

// Number converts a scalar to float64. Bools convert to 1/0, strings by
// numeric parse; arrays, objects and nil do not convert.
func Number(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case []interface{}, map[string]interface{}:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String converts a scalar to its text form. Numbers use plain decimal
// formatting, bools become "true"/"false". Arrays, objects and nil do
// not convert.
func String(v interface{}) (string, bool) {
	switch v.(type) {
	case nil, []interface{}, map[string]interface{}:
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// Array returns v as a JSON array, parsing string values first.
func Array(v interface{}) ([]interface{}, bool) {
	switch t := v.(type) {
	case []interface{}:
		return t, true
	case string:
		if arr, ok := ParseString(t).([]interface{}); ok {
			return arr, true
		}
	}
	return nil, false
}

// Object returns v as a JSON object, parsing string values first.
func Object(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case string:
		if obj, ok := ParseString(t).(map[string]interface{}); ok {
			return obj, true
		}
	}
	return nil, false
}
