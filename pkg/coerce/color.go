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
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// LinearColor is an RGBA color with floating-point channels on the
// linear 0-1 convention, independent of the 0-255 byte scale used by
// display-encoded property strings.
type LinearColor struct {
	R, G, B, A float64
}

// namedColors maps color words and lighting-temperature presets to
// hand-tuned RGBA constants. Lookup is case-insensitive.
var namedColors = map[string]LinearColor{
	"white":       {1, 1, 1, 1},
	"black":       {0, 0, 0, 1},
	"red":         {1, 0, 0, 1},
	"green":       {0, 1, 0, 1},
	"blue":        {0, 0, 1, 1},
	"yellow":      {1, 1, 0, 1},
	"cyan":        {0, 1, 1, 1},
	"magenta":     {1, 0, 1, 1},
	"orange":      {1, 0.5, 0, 1},
	"purple":      {0.5, 0, 0.5, 1},
	"pink":        {1, 0.75, 0.8, 1},
	"gray":        {0.5, 0.5, 0.5, 1},
	"grey":        {0.5, 0.5, 0.5, 1},
	"transparent": {0, 0, 0, 0},

	// Lighting temperature presets.
	"warm":      {1, 0.84, 0.67, 1},
	"cool":      {0.8, 0.88, 1, 1},
	"daylight":  {1, 0.96, 0.9, 1},
	"candle":    {1, 0.58, 0.16, 1},
	"sunset":    {0.98, 0.61, 0.34, 1},
	"moonlight": {0.45, 0.52, 0.68, 1},
	"overcast":  {0.78, 0.84, 0.89, 1},
}

// AsColor resolves a color from, in order: a string (hex, color name,
// property text, bare CSV channels), a coerced array [r,g,b] or
// [r,g,b,a], or a keyed object with channel aliases (r/red, g/green,
// b/blue, a/alpha; alpha defaults to 1). Channels stay on the linear
// 0-1 convention.
func AsColor(v interface{}) (LinearColor, bool) {
	if t, ok := v.(LinearColor); ok {
		return t, true
	}
	if s, ok := v.(string); ok {
		if c, ok := ParseColorText(s); ok {
			return c, true
		}
	}
	if arr, ok := Array(v); ok {
		if len(arr) < 3 {
			return LinearColor{}, false
		}
		r, okR := Number(arr[0])
		g, okG := Number(arr[1])
		b, okB := Number(arr[2])
		if !okR || !okG || !okB {
			return LinearColor{}, false
		}
		c := LinearColor{R: r, G: g, B: b, A: 1}
		if len(arr) >= 4 {
			a, okA := Number(arr[3])
			if !okA {
				return LinearColor{}, false
			}
			c.A = a
		}
		return c, true
	}
	if obj, ok := Object(v); ok {
		return colorFromKeyed(lowerKeys(obj))
	}
	return LinearColor{}, false
}

// ParseColorText resolves a color from plain text: hex notation
// (#RGB, #RRGGBB, #RRGGBBAA), a named color, stored property text
// "(R=…,G=…,B=…[,A=…])", or bare comma-separated channel numbers.
// Used when reading values already persisted in host format as well as
// for caller-supplied strings.
func ParseColorText(s string) (LinearColor, bool) {
	text := strings.TrimSpace(s)
	if text == "" {
		return LinearColor{}, false
	}
	if c, ok := parseHexColor(text); ok {
		return c, true
	}
	if c, ok := namedColors[strings.ToLower(text)]; ok {
		return c, true
	}
	if m, ok := parsePropertyText(text); ok {
		return colorFromKeyed(lowerKeys(m))
	}
	parts := strings.Split(text, ",")
	if len(parts) == 3 || len(parts) == 4 {
		nums := make([]float64, 0, 4)
		for _, p := range parts {
			n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return LinearColor{}, false
			}
			nums = append(nums, n)
		}
		c := LinearColor{R: nums[0], G: nums[1], B: nums[2], A: 1}
		if len(nums) == 4 {
			c.A = nums[3]
		}
		return c, true
	}
	return LinearColor{}, false
}

// parseHexColor decodes #RGB, #RRGGBB and #RRGGBBAA. The 3-digit form
// expands by doubling each nibble; the 6-digit form gets full alpha.
// Any other length fails.
func parseHexColor(s string) (LinearColor, bool) {
	if !strings.HasPrefix(s, "#") {
		return LinearColor{}, false
	}
	digits := s[1:]
	alpha := 1.0
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return LinearColor{}, false
		}
		alpha = float64(a) / 255.0
		digits = digits[:6]
	default:
		return LinearColor{}, false
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return LinearColor{}, false
	}
	return LinearColor{R: c.R, G: c.G, B: c.B, A: alpha}, true
}

func colorFromKeyed(m map[string]interface{}) (LinearColor, bool) {
	r, okR := field(m, "r", "red")
	g, okG := field(m, "g", "green")
	b, okB := field(m, "b", "blue")
	if !okR || !okG || !okB {
		return LinearColor{}, false
	}
	a, okA := field(m, "a", "alpha")
	if !okA {
		a = 1
	}
	return LinearColor{R: r, G: g, B: b, A: a}, true
}

// PropertyString serializes the color keeping floating-point linear
// channels. Use this for properties stored as linear color structs.
func (c LinearColor) PropertyString() string {
	return fmt.Sprintf("(R=%s,G=%s,B=%s,A=%s)",
		formatFloat(c.R), formatFloat(c.G), formatFloat(c.B), formatFloat(c.A))
}

// BytePropertyString serializes the color gamma-encoded to integer
// display channels 0-255; alpha scales without gamma. Properties stored
// as byte colors need this form. The two forms are different numeric
// scales: writing the wrong one silently shifts brightness.
func (c LinearColor) BytePropertyString() string {
	srgb := colorful.LinearRgb(clamp01(c.R), clamp01(c.G), clamp01(c.B)).Clamped()
	r, g, b := srgb.RGB255()
	a := int(math.Round(clamp01(c.A) * 255))
	return fmt.Sprintf("(R=%d,G=%d,B=%d,A=%d)", r, g, b, a)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
