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

func TestAsVector2(t *testing.T) {
	t.Run("Positional Array", func(t *testing.T) {
		v, ok := AsVector2([]interface{}{1.0, 2.0})
		require.True(t, ok)
		assert.Equal(t, Vector2{X: 1, Y: 2}, v)
	})

	t.Run("Keyed Object Case Insensitive", func(t *testing.T) {
		v, ok := AsVector2(map[string]interface{}{"X": 3.0, "y": 4.0})
		require.True(t, ok)
		assert.Equal(t, Vector2{X: 3, Y: 4}, v)
	})

	t.Run("Embedded JSON Text", func(t *testing.T) {
		v, ok := AsVector2("[5, 6]")
		require.True(t, ok)
		assert.Equal(t, Vector2{X: 5, Y: 6}, v)
	})

	t.Run("Property Text Round Trip", func(t *testing.T) {
		orig := Vector2{X: 1.5, Y: -2.25}
		v, ok := AsVector2(orig.PropertyString())
		require.True(t, ok)
		assert.Equal(t, orig, v)
	})

	t.Run("Too Few Elements", func(t *testing.T) {
		_, ok := AsVector2([]interface{}{1.0})
		assert.False(t, ok)
	})
}

func TestAsVector3(t *testing.T) {
	t.Run("Positional Array", func(t *testing.T) {
		v, ok := AsVector3([]interface{}{1.0, 2.0, 3.0})
		require.True(t, ok)
		assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, v)
	})

	t.Run("Keyed Object", func(t *testing.T) {
		v, ok := AsVector3(map[string]interface{}{"x": 1.0, "Y": 2.0, "z": 3.0})
		require.True(t, ok)
		assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, v)
	})

	t.Run("Numeric Strings In Components", func(t *testing.T) {
		v, ok := AsVector3([]interface{}{"1", "2", "3"})
		require.True(t, ok)
		assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, v)
	})

	t.Run("Property Text Round Trip", func(t *testing.T) {
		orig := Vector3{X: 100, Y: -50.5, Z: 0.001}
		v, ok := AsVector3(orig.PropertyString())
		require.True(t, ok)
		assert.Equal(t, orig, v)
	})

	t.Run("Missing Component Fails", func(t *testing.T) {
		_, ok := AsVector3(map[string]interface{}{"x": 1.0, "y": 2.0})
		assert.False(t, ok)

		_, ok = AsVector3([]interface{}{1.0, 2.0})
		assert.False(t, ok)
	})

	t.Run("Non Numeric Component Fails", func(t *testing.T) {
		_, ok := AsVector3([]interface{}{1.0, "abc", 3.0})
		assert.False(t, ok)
	})
}

func TestAsRotator(t *testing.T) {
	t.Run("Positional Order Is Pitch Yaw Roll", func(t *testing.T) {
		r, ok := AsRotator([]interface{}{10.0, 20.0, 30.0})
		require.True(t, ok)
		assert.Equal(t, Rotator{Pitch: 10, Yaw: 20, Roll: 30}, r)
	})

	t.Run("Axis Aliases", func(t *testing.T) {
		r, ok := AsRotator(map[string]interface{}{"pitch": 1.0, "yaw": 2.0, "roll": 3.0})
		require.True(t, ok)
		assert.Equal(t, Rotator{Pitch: 1, Yaw: 2, Roll: 3}, r)

		// Short and axis-letter aliases resolve the same components.
		r, ok = AsRotator(map[string]interface{}{"p": 1.0, "y": 2.0, "r": 3.0})
		require.True(t, ok)
		assert.Equal(t, Rotator{Pitch: 1, Yaw: 2, Roll: 3}, r)

		r, ok = AsRotator(map[string]interface{}{"x": 1.0, "y": 2.0, "z": 3.0})
		require.True(t, ok)
		assert.Equal(t, Rotator{Pitch: 1, Yaw: 2, Roll: 3}, r)
	})

	t.Run("Property Text Round Trip", func(t *testing.T) {
		orig := Rotator{Pitch: -90, Yaw: 45.5, Roll: 180}
		r, ok := AsRotator(orig.PropertyString())
		require.True(t, ok)
		assert.Equal(t, orig, r)
	})

	t.Run("Missing Axis Fails", func(t *testing.T) {
		_, ok := AsRotator(map[string]interface{}{"pitch": 1.0, "yaw": 2.0})
		assert.False(t, ok)
	})
}

func TestAsMargin(t *testing.T) {
	t.Run("Uniform Scalar", func(t *testing.T) {
		m, ok := AsMargin(5.0)
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 5, Top: 5, Right: 5, Bottom: 5}, m)

		m, ok = AsMargin("5")
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 5, Top: 5, Right: 5, Bottom: 5}, m)
	})

	t.Run("Two Element Array Is Horizontal Vertical", func(t *testing.T) {
		m, ok := AsMargin([]interface{}{2.0, 4.0})
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 2, Right: 2, Top: 4, Bottom: 4}, m)
	})

	t.Run("Four Element Array Is Left Top Right Bottom", func(t *testing.T) {
		m, ok := AsMargin([]interface{}{1.0, 2.0, 3.0, 4.0})
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 1, Top: 2, Right: 3, Bottom: 4}, m)
	})

	t.Run("Single Element Array", func(t *testing.T) {
		m, ok := AsMargin([]interface{}{7.0})
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 7, Top: 7, Right: 7, Bottom: 7}, m)
	})

	t.Run("Three Element Array Fails", func(t *testing.T) {
		_, ok := AsMargin([]interface{}{1.0, 2.0, 3.0})
		assert.False(t, ok)
	})

	t.Run("Side Aliases", func(t *testing.T) {
		m, ok := AsMargin(map[string]interface{}{"left": 1.0, "top": 2.0, "right": 3.0, "bottom": 4.0})
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 1, Top: 2, Right: 3, Bottom: 4}, m)

		m, ok = AsMargin(map[string]interface{}{"l": 1.0, "t": 2.0, "r": 3.0, "b": 4.0})
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 1, Top: 2, Right: 3, Bottom: 4}, m)
	})

	t.Run("Missing Side Fails", func(t *testing.T) {
		_, ok := AsMargin(map[string]interface{}{"left": 1.0, "top": 2.0, "right": 3.0})
		assert.False(t, ok)
	})

	t.Run("Property Text Round Trip", func(t *testing.T) {
		orig := Margin{Left: 1, Top: 2.5, Right: 3, Bottom: 4.25}
		m, ok := AsMargin(orig.PropertyString())
		require.True(t, ok)
		assert.Equal(t, orig, m)
	})

	t.Run("Embedded JSON Text", func(t *testing.T) {
		m, ok := AsMargin("[2, 4]")
		require.True(t, ok)
		assert.Equal(t, Margin{Left: 2, Right: 2, Top: 4, Bottom: 4}, m)
	})
}

func TestPropertyStrings(t *testing.T) {
	t.Run("Canonical Forms", func(t *testing.T) {
		assert.Equal(t, "(X=1,Y=2)", Vector2{X: 1, Y: 2}.PropertyString())
		assert.Equal(t, "(X=1,Y=2,Z=3)", Vector3{X: 1, Y: 2, Z: 3}.PropertyString())
		assert.Equal(t, "(Pitch=0,Yaw=90,Roll=0)", Rotator{Yaw: 90}.PropertyString())
		assert.Equal(t, "(Left=1,Top=2,Right=3,Bottom=4)", Margin{Left: 1, Top: 2, Right: 3, Bottom: 4}.PropertyString())
	})

	t.Run("Floats Keep Minimal Digits", func(t *testing.T) {
		assert.Equal(t, "(X=1.5,Y=-0.25)", Vector2{X: 1.5, Y: -0.25}.PropertyString())
		assert.Equal(t, "(X=0.1,Y=0.2,Z=0.3)", Vector3{X: 0.1, Y: 0.2, Z: 0.3}.PropertyString())
	})
}

func TestToPropertyString(t *testing.T) {
	t.Run("Color Wins Ambiguous Arrays", func(t *testing.T) {
		// A 3-element numeric array could be a color or a vector; the
		// documented order tries color first.
		s, ok := ToPropertyString([]interface{}{1.0, 0.0, 0.0})
		require.True(t, ok)
		assert.Equal(t, "(R=1,G=0,B=0,A=1)", s)
	})

	t.Run("Named Color", func(t *testing.T) {
		s, ok := ToPropertyString("red")
		require.True(t, ok)
		assert.Equal(t, "(R=1,G=0,B=0,A=1)", s)
	})

	t.Run("Keyed Vector Falls Through Color", func(t *testing.T) {
		s, ok := ToPropertyString(map[string]interface{}{"x": 1.0, "y": 2.0, "z": 3.0})
		require.True(t, ok)
		assert.Equal(t, "(X=1,Y=2,Z=3)", s)
	})

	t.Run("Keyed Rotator", func(t *testing.T) {
		s, ok := ToPropertyString(map[string]interface{}{"pitch": 10.0, "yaw": 20.0, "roll": 30.0})
		require.True(t, ok)
		assert.Equal(t, "(Pitch=10,Yaw=20,Roll=30)", s)
	})

	t.Run("Plain Scalars", func(t *testing.T) {
		s, ok := ToPropertyString(5.0)
		require.True(t, ok)
		assert.Equal(t, "5", s)

		s, ok = ToPropertyString(true)
		require.True(t, ok)
		assert.Equal(t, "true", s)

		s, ok = ToPropertyString("hello")
		require.True(t, ok)
		assert.Equal(t, "hello", s)
	})

	t.Run("Nil Fails", func(t *testing.T) {
		_, ok := ToPropertyString(nil)
		assert.False(t, ok)
	})
}
