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
	"fmt"
	"strconv"
	"strings"
)

// Vector2 is a 2D position or size.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a 3D position, scale or direction.
type Vector3 struct {
	X, Y, Z float64
}

// Rotator is an orientation in degrees.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// Margin is a four-sided inset, CSS box-model style.
type Margin struct {
	Left, Top, Right, Bottom float64
}

// AsVector2 resolves a positional array [x,y], a keyed object {x,y}
// (case-insensitive), or vector property text "(X=…,Y=…)".
func AsVector2(v interface{}) (Vector2, bool) {
	if t, ok := v.(Vector2); ok {
		return t, true
	}
	if s, ok := v.(string); ok {
		if m, ok := parsePropertyText(s); ok {
			v = m
		}
	}
	if arr, ok := Array(v); ok {
		if len(arr) < 2 {
			return Vector2{}, false
		}
		x, okX := Number(arr[0])
		y, okY := Number(arr[1])
		if okX && okY {
			return Vector2{X: x, Y: y}, true
		}
		return Vector2{}, false
	}
	if obj, ok := Object(v); ok {
		m := lowerKeys(obj)
		x, okX := field(m, "x")
		y, okY := field(m, "y")
		if okX && okY {
			return Vector2{X: x, Y: y}, true
		}
	}
	return Vector2{}, false
}

// AsVector3 resolves a positional array [x,y,z], a keyed object {x,y,z}
// (case-insensitive), or vector property text "(X=…,Y=…,Z=…)".
func AsVector3(v interface{}) (Vector3, bool) {
	if t, ok := v.(Vector3); ok {
		return t, true
	}
	if s, ok := v.(string); ok {
		if m, ok := parsePropertyText(s); ok {
			v = m
		}
	}
	if arr, ok := Array(v); ok {
		if len(arr) < 3 {
			return Vector3{}, false
		}
		x, okX := Number(arr[0])
		y, okY := Number(arr[1])
		z, okZ := Number(arr[2])
		if okX && okY && okZ {
			return Vector3{X: x, Y: y, Z: z}, true
		}
		return Vector3{}, false
	}
	if obj, ok := Object(v); ok {
		m := lowerKeys(obj)
		x, okX := field(m, "x")
		y, okY := field(m, "y")
		z, okZ := field(m, "z")
		if okX && okY && okZ {
			return Vector3{X: x, Y: y, Z: z}, true
		}
	}
	return Vector3{}, false
}

// AsRotator resolves a positional array [pitch,yaw,roll], a keyed object
// with per-axis aliases (pitch/p/x, yaw/y, roll/r/z, case-insensitive),
// or rotator property text "(Pitch=…,Yaw=…,Roll=…)".
func AsRotator(v interface{}) (Rotator, bool) {
	if t, ok := v.(Rotator); ok {
		return t, true
	}
	if s, ok := v.(string); ok {
		if m, ok := parsePropertyText(s); ok {
			v = m
		}
	}
	if arr, ok := Array(v); ok {
		if len(arr) < 3 {
			return Rotator{}, false
		}
		pitch, okP := Number(arr[0])
		yaw, okY := Number(arr[1])
		roll, okR := Number(arr[2])
		if okP && okY && okR {
			return Rotator{Pitch: pitch, Yaw: yaw, Roll: roll}, true
		}
		return Rotator{}, false
	}
	if obj, ok := Object(v); ok {
		m := lowerKeys(obj)
		pitch, okP := field(m, "pitch", "p", "x")
		yaw, okY := field(m, "yaw", "y")
		roll, okR := field(m, "roll", "r", "z")
		if okP && okY && okR {
			return Rotator{Pitch: pitch, Yaw: yaw, Roll: roll}, true
		}
	}
	return Rotator{}, false
}

// AsMargin resolves a single scalar (uniform), a 1/2/4-element array
// (uniform, horizontal+vertical, or left/top/right/bottom), a keyed
// object with per-side aliases (left/l, top/t, right/r, bottom/b), or
// margin property text "(Left=…,Top=…,Right=…,Bottom=…)".
func AsMargin(v interface{}) (Margin, bool) {
	if t, ok := v.(Margin); ok {
		return t, true
	}
	if s, ok := v.(string); ok {
		if m, ok := parsePropertyText(s); ok {
			v = m
		}
	}
	if n, ok := Number(v); ok {
		return Margin{Left: n, Top: n, Right: n, Bottom: n}, true
	}
	if arr, ok := Array(v); ok {
		nums := make([]float64, 0, len(arr))
		for _, e := range arr {
			n, ok := Number(e)
			if !ok {
				return Margin{}, false
			}
			nums = append(nums, n)
		}
		switch len(nums) {
		case 1:
			return Margin{Left: nums[0], Top: nums[0], Right: nums[0], Bottom: nums[0]}, true
		case 2:
			return Margin{Left: nums[0], Right: nums[0], Top: nums[1], Bottom: nums[1]}, true
		case 4:
			return Margin{Left: nums[0], Top: nums[1], Right: nums[2], Bottom: nums[3]}, true
		}
		return Margin{}, false
	}
	if obj, ok := Object(v); ok {
		m := lowerKeys(obj)
		left, okL := field(m, "left", "l")
		top, okT := field(m, "top", "t")
		right, okR := field(m, "right", "r")
		bottom, okB := field(m, "bottom", "b")
		if okL && okT && okR && okB {
			return Margin{Left: left, Top: top, Right: right, Bottom: bottom}, true
		}
	}
	return Margin{}, false
}

// PropertyString serializes to the host's persisted form.
func (v Vector2) PropertyString() string {
	return fmt.Sprintf("(X=%s,Y=%s)", formatFloat(v.X), formatFloat(v.Y))
}

// PropertyString serializes to the host's persisted form.
func (v Vector3) PropertyString() string {
	return fmt.Sprintf("(X=%s,Y=%s,Z=%s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

// PropertyString serializes to the host's persisted form.
func (r Rotator) PropertyString() string {
	return fmt.Sprintf("(Pitch=%s,Yaw=%s,Roll=%s)", formatFloat(r.Pitch), formatFloat(r.Yaw), formatFloat(r.Roll))
}

// PropertyString serializes to the host's persisted form.
func (m Margin) PropertyString() string {
	return fmt.Sprintf("(Left=%s,Top=%s,Right=%s,Bottom=%s)",
		formatFloat(m.Left), formatFloat(m.Top), formatFloat(m.Right), formatFloat(m.Bottom))
}

// ToPropertyString converts an arbitrary value to the host's persisted
// string form. The attempt order is a contract: color, then vector,
// then rotator, then plain scalar. A 3- or 4-element numeric array is
// ambiguous between color and vector, and color wins; reordering would
// change observable behavior. Colors emit the floating-point linear
// form; use BytePropertyString explicitly for byte-encoded properties.
func ToPropertyString(v interface{}) (string, bool) {
	if c, ok := AsColor(v); ok {
		return c.PropertyString(), true
	}
	if vec, ok := AsVector3(v); ok {
		return vec.PropertyString(), true
	}
	if rot, ok := AsRotator(v); ok {
		return rot.PropertyString(), true
	}
	if s, ok := String(v); ok {
		return s, true
	}
	return "", false
}

// parsePropertyText scans the host's parenthesized "(Key=1,Key2=2)"
// form into a keyed map with numeric values, so stored property strings
// can feed the same alias resolution as keyed JSON objects.
func parsePropertyText(s string) (map[string]interface{}, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := s[1 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return nil, false
	}
	out := make(map[string]interface{})
	for _, pair := range strings.Split(inner, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, false
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, false
		}
		out[strings.TrimSpace(key)] = n
	}
	return out, true
}

func lowerKeys(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

// field resolves one component from a lowercase-keyed map through its
// accepted aliases, first match wins.
func field(m map[string]interface{}, aliases ...string) (float64, bool) {
	for _, a := range aliases {
		if raw, ok := m[a]; ok {
			if n, ok := Number(raw); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
