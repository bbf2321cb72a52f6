package sandbox

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
	"errors"
	"testing"

	"github.com/rizome-dev/stagehand/pkg/host"
	"github.com/rizome-dev/stagehand/pkg/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		obj := NewObject("/World/Props/Cube", "StaticMesh")

		assert.Equal(t, "/World/Props/Cube", obj.Path())
		assert.Equal(t, "StaticMesh", obj.Class())
		assert.Equal(t, "Cube", obj.Name())
	})

	t.Run("Declare With Zero Values", func(t *testing.T) {
		obj := NewObject("/World/Cube", "StaticMesh")

		tests := []struct {
			name string
			kind host.PropertyKind
			want interface{}
		}{
			{"Label", host.KindString, ""},
			{"Count", host.KindInt, int64(0)},
			{"Scale", host.KindFloat, 0.0},
			{"Visible", host.KindBool, false},
			{"Tags", host.KindArray, []interface{}{}},
			{"Location", host.KindStruct, ""},
		}
		for _, tt := range tests {
			obj.DeclareProperty(tt.name, tt.kind, nil)

			kind, ok := obj.Kind(tt.name)
			require.True(t, ok, tt.name)
			assert.Equal(t, tt.kind, kind, tt.name)

			v, err := obj.Get(tt.name)
			require.NoError(t, err, tt.name)
			assert.Equal(t, tt.want, v, tt.name)
		}
	})

	t.Run("Declare With Initial Value", func(t *testing.T) {
		obj := NewObject("/World/Cube", "StaticMesh")
		obj.DeclareProperty("Label", host.KindString, "lamp")

		v, err := obj.Get("Label")
		require.NoError(t, err)
		assert.Equal(t, "lamp", v)
	})

	t.Run("Redeclare Replaces", func(t *testing.T) {
		obj := NewObject("/World/Cube", "StaticMesh")
		obj.DeclareProperty("Label", host.KindString, "lamp")
		obj.DeclareProperty("Label", host.KindInt, nil)

		kind, _ := obj.Kind("Label")
		assert.Equal(t, host.KindInt, kind)

		v, err := obj.Get("Label")
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)
	})

	t.Run("Set And Get", func(t *testing.T) {
		obj := NewObject("/World/Cube", "StaticMesh")
		obj.DeclareProperty("Scale", host.KindFloat, nil)

		require.NoError(t, obj.Set("Scale", 2.5))
		v, err := obj.Get("Scale")
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)
	})

	t.Run("Undeclared Property", func(t *testing.T) {
		obj := NewObject("/World/Cube", "StaticMesh")

		_, err := obj.Get("Nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, tool.ErrPropertyNotFound))

		err = obj.Set("Nope", 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, tool.ErrPropertyNotFound))
	})

	t.Run("Property Names Sorted", func(t *testing.T) {
		obj := NewObject("/World/Cube", "StaticMesh")
		obj.DeclareProperty("Zeta", host.KindString, nil)
		obj.DeclareProperty("Alpha", host.KindString, nil)
		obj.DeclareProperty("Mid", host.KindString, nil)

		assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, obj.PropertyNames())
	})
}

func TestWorld(t *testing.T) {
	t.Run("Default Name", func(t *testing.T) {
		assert.Equal(t, "Sandbox", NewWorld("").Name())
		assert.Equal(t, "Demo", NewWorld("Demo").Name())
	})

	t.Run("Spawn", func(t *testing.T) {
		w := NewWorld("Demo")

		obj, err := w.Spawn("/World/Cube", "StaticMesh")
		require.NoError(t, err)
		assert.Equal(t, "/World/Cube", obj.Path())
		assert.Equal(t, "StaticMesh", obj.Class())
	})

	t.Run("Spawn Duplicate Path", func(t *testing.T) {
		w := NewWorld("Demo")
		_, err := w.Spawn("/World/Cube", "StaticMesh")
		require.NoError(t, err)

		_, err = w.Spawn("/World/Cube", "Light")
		require.Error(t, err)
		assert.Equal(t, "object '/World/Cube' already exists", err.Error())
	})

	t.Run("Spawn Empty Path", func(t *testing.T) {
		w := NewWorld("Demo")

		_, err := w.Spawn("   ", "StaticMesh")
		require.Error(t, err)
		assert.Equal(t, "object path is required", err.Error())
	})

	t.Run("Remove", func(t *testing.T) {
		w := NewWorld("Demo")
		_, err := w.Spawn("/World/Cube", "StaticMesh")
		require.NoError(t, err)

		require.NoError(t, w.Remove("/World/Cube"))
		_, err = w.Resolve("/World/Cube")
		require.Error(t, err)

		err = w.Remove("/World/Cube")
		require.Error(t, err)
		assert.True(t, errors.Is(err, tool.ErrObjectNotFound))
	})

	t.Run("Objects Sorted By Path", func(t *testing.T) {
		w := NewWorld("Demo")
		for _, p := range []string{"/World/C", "/World/A", "/World/B"} {
			_, err := w.Spawn(p, "StaticMesh")
			require.NoError(t, err)
		}

		objects := w.Objects()
		require.Len(t, objects, 3)
		assert.Equal(t, "/World/A", objects[0].Path())
		assert.Equal(t, "/World/B", objects[1].Path())
		assert.Equal(t, "/World/C", objects[2].Path())
	})

	t.Run("Find By Short Name", func(t *testing.T) {
		w := NewWorld("Demo")
		_, err := w.Spawn("/World/Props/Lamp", "Light")
		require.NoError(t, err)

		obj, ok := w.Find("Lamp")
		require.True(t, ok)
		assert.Equal(t, "/World/Props/Lamp", obj.Path())

		_, ok = w.Find("Ghost")
		assert.False(t, ok)
	})

	t.Run("Resolve", func(t *testing.T) {
		w := NewWorld("Demo")
		spawned, err := w.Spawn("/World/Cube", "StaticMesh")
		require.NoError(t, err)

		obj, err := w.Resolve("/World/Cube")
		require.NoError(t, err)
		assert.Same(t, spawned, obj)

		_, err = w.Resolve("/World/Ghost")
		require.Error(t, err)
		assert.True(t, errors.Is(err, tool.ErrObjectNotFound))
		assert.Contains(t, err.Error(), "/World/Ghost")
	})
}
