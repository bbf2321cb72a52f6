package tool

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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultEnvelopes(t *testing.T) {
	t.Run("OK Flattens Fields", func(t *testing.T) {
		raw := OK(map[string]interface{}{"count": 2, "name": "demo"})

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &payload))
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, 2.0, payload["count"])
		assert.Equal(t, "demo", payload["name"])
	})

	t.Run("OK Ignores Success Override", func(t *testing.T) {
		raw := OK(map[string]interface{}{"success": false})

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &payload))
		assert.Equal(t, true, payload["success"])
	})

	t.Run("OK With Nil Fields", func(t *testing.T) {
		assert.Equal(t, `{"success":true}`, OK(nil))
	})

	t.Run("Fail", func(t *testing.T) {
		assert.Equal(t, `{"success":false,"error":"boom"}`, Fail("boom"))
	})

	t.Run("Failf", func(t *testing.T) {
		assert.Equal(t, `{"success":false,"error":"Tool 'x' not found"}`, Failf("Tool '%s' not found", "x"))
	})

	t.Run("FailCode", func(t *testing.T) {
		raw := FailCode("Tool 'x' is disabled", CodeToolDisabled)

		var res Result
		require.NoError(t, json.Unmarshal([]byte(raw), &res))
		assert.False(t, res.Success)
		assert.Equal(t, "Tool 'x' is disabled", res.Error)
		assert.Equal(t, "TOOL_DISABLED", res.ErrorCode)
	})

	t.Run("Error Code Omitted When Empty", func(t *testing.T) {
		assert.NotContains(t, Fail("boom"), "error_code")
	})
}

func TestParams(t *testing.T) {
	params := Params{
		"name":  "cube",
		"count": "3",
		"spec":  "[1,2,3]",
		"empty": "",
	}

	t.Run("Get And Has", func(t *testing.T) {
		assert.Equal(t, "cube", params.Get("name"))
		assert.Equal(t, "", params.Get("missing"))

		assert.True(t, params.Has("name"))
		assert.True(t, params.Has("empty"))
		assert.False(t, params.Has("missing"))
	})

	t.Run("Value Parses", func(t *testing.T) {
		v, ok := params.Value("count")
		require.True(t, ok)
		assert.Equal(t, 3.0, v)

		v, ok = params.Value("spec")
		require.True(t, ok)
		assert.Len(t, v, 3)

		v, ok = params.Value("name")
		require.True(t, ok)
		assert.Equal(t, "cube", v)

		_, ok = params.Value("missing")
		assert.False(t, ok)
	})
}

func TestRequiredParams(t *testing.T) {
	tl := Tool{
		Name: "spawn",
		Parameters: []Param{
			{Name: "path", Required: true},
			{Name: "class", Required: true},
			{Name: "label"},
		},
	}
	assert.Equal(t, []string{"path", "class"}, tl.RequiredParams())

	empty := Tool{Name: "bare"}
	assert.Nil(t, empty.RequiredParams())
}

func TestParamError(t *testing.T) {
	err := NewParamError("name", ErrParamEmpty)
	assert.Equal(t, "parameter 'name' invalid: parameter value is empty", err.Error())
	assert.True(t, errors.Is(err, ErrParamEmpty))

	var pe *ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "name", pe.Param)
}
