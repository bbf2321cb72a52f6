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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	t.Run("Empty Text", func(t *testing.T) {
		assert.Equal(t, "", ParseString(""))
	})

	t.Run("JSON Fragments", func(t *testing.T) {
		v := ParseString("[1, 2, 3]")
		arr, ok := v.([]interface{})
		require.True(t, ok)
		assert.Equal(t, []interface{}{1.0, 2.0, 3.0}, arr)

		v = ParseString(`{"x": 1, "y": 2}`)
		obj, ok := v.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 1.0, obj["x"])
		assert.Equal(t, 2.0, obj["y"])

		// Quoted JSON string unwraps one level
		assert.Equal(t, "hello", ParseString(`"hello"`))
	})

	t.Run("Invalid JSON Degrades To Text", func(t *testing.T) {
		assert.Equal(t, "[1, 2,", ParseString("[1, 2,"))
		assert.Equal(t, "{not json}", ParseString("{not json}"))
	})

	t.Run("Boolean Words", func(t *testing.T) {
		assert.Equal(t, true, ParseString("true"))
		assert.Equal(t, true, ParseString("TRUE"))
		assert.Equal(t, true, ParseString("yes"))
		assert.Equal(t, true, ParseString("Yes"))
		assert.Equal(t, false, ParseString("false"))
		assert.Equal(t, false, ParseString("no"))
		assert.Equal(t, false, ParseString("NO"))
	})

	t.Run("Null Word", func(t *testing.T) {
		assert.Nil(t, ParseString("null"))
		assert.Nil(t, ParseString("NULL"))
	})

	t.Run("Numbers", func(t *testing.T) {
		assert.Equal(t, 42.0, ParseString("42"))
		assert.Equal(t, -3.5, ParseString("-3.5"))
		assert.Equal(t, 0.25, ParseString(" 0.25 "))
		assert.Equal(t, 1e6, ParseString("1e6"))
	})

	t.Run("Plain Text Passes Through", func(t *testing.T) {
		assert.Equal(t, "hello world", ParseString("hello world"))
		assert.Equal(t, "/Game/Maps/Demo", ParseString("/Game/Maps/Demo"))
		assert.Equal(t, "truely", ParseString("truely"))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("Doubly Encoded Strings Resolve", func(t *testing.T) {
		// A JSON string wrapping a JSON array resolves to the array.
		v := Normalize(`"[1,2,3]"`)
		arr, ok := v.([]interface{})
		require.True(t, ok)
		assert.Len(t, arr, 3)
	})

	t.Run("Non Strings Pass Through", func(t *testing.T) {
		assert.Equal(t, 5.0, Normalize(5.0))
		assert.Equal(t, true, Normalize(true))
		m := map[string]interface{}{"x": "1"}
		assert.Equal(t, m, Normalize(m))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{"", "5", "yes", `"[1,2]"`, "plain", "(X=1,Y=2)", `"\"quoted\""`}
		for _, in := range inputs {
			once := Normalize(in)
			twice := Normalize(once)
			assert.Equal(t, once, twice, "input %q", in)
		}
	})
}

func TestBool(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  bool
		ok    bool
	}{
		{"Bool True", true, true, true},
		{"Bool False", false, false, true},
		{"Word True", "true", true, true},
		{"Word Yes", "YES", true, true},
		{"Word One", "1", true, true},
		{"Word On", "on", true, true},
		{"Word False", "false", false, true},
		{"Word No", "no", false, true},
		{"Word Zero", "0", false, true},
		{"Word Off", "OFF", false, true},
		{"Number Nonzero", 2.5, true, true},
		{"Number Zero", 0.0, false, true},
		{"Unknown Word", "maybe", false, false},
		{"Nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bool(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"Float", 4.5, 4.5, true},
		{"Bool True", true, 1, true},
		{"Bool False", false, 0, true},
		{"Numeric String", "12.25", 12.25, true},
		{"Padded String", "  -3 ", -3, true},
		{"Word", "abc", 0, false},
		{"Nil", nil, 0, false},
		{"Array", []interface{}{1.0}, 0, false},
		{"Object", map[string]interface{}{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Number(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Run("Scalars Convert", func(t *testing.T) {
		s, ok := String("text")
		require.True(t, ok)
		assert.Equal(t, "text", s)

		s, ok = String(5.0)
		require.True(t, ok)
		assert.Equal(t, "5", s)

		s, ok = String(true)
		require.True(t, ok)
		assert.Equal(t, "true", s)
	})

	t.Run("Containers Do Not Convert", func(t *testing.T) {
		_, ok := String([]interface{}{1.0})
		assert.False(t, ok)

		_, ok = String(map[string]interface{}{"x": 1.0})
		assert.False(t, ok)

		_, ok = String(nil)
		assert.False(t, ok)
	})
}

func TestArrayAndObject(t *testing.T) {
	t.Run("Array Direct And Embedded", func(t *testing.T) {
		arr, ok := Array([]interface{}{1.0, 2.0})
		require.True(t, ok)
		assert.Len(t, arr, 2)

		arr, ok = Array("[1,2,3]")
		require.True(t, ok)
		assert.Len(t, arr, 3)

		_, ok = Array("not an array")
		assert.False(t, ok)

		_, ok = Array(5.0)
		assert.False(t, ok)
	})

	t.Run("Object Direct And Embedded", func(t *testing.T) {
		obj, ok := Object(map[string]interface{}{"x": 1.0})
		require.True(t, ok)
		assert.Equal(t, 1.0, obj["x"])

		obj, ok = Object(`{"r": 0.5}`)
		require.True(t, ok)
		assert.Equal(t, 0.5, obj["r"])

		_, ok = Object("plain")
		assert.False(t, ok)

		_, ok = Object([]interface{}{})
		assert.False(t, ok)
	})
}
