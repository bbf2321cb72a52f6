// Package property bridges generic (object, property name, JSON value)
// triples to the host's typed property system.
package property

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

	json "github.com/goccy/go-json"
	"github.com/rizome-dev/stagehand/pkg/coerce"
	"github.com/rizome-dev/stagehand/pkg/host"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// Marshaller converts loosely-typed values to and from host properties.
// It dispatches on the property's declared kind and fails explicitly on
// anything it cannot convert; it never writes a guessed value.
type Marshaller struct {
	objects host.ObjectResolver
}

// NewMarshaller creates a marshaller. The resolver is used to turn
// string paths into live handles for object-reference properties; it
// may be nil when no such properties are written.
func NewMarshaller(objects host.ObjectResolver) *Marshaller {
	return &Marshaller{objects: objects}
}

// SetProperty converts value to the declared kind of the named property
// and writes it to obj.
func (m *Marshaller) SetProperty(obj host.Object, name string, value interface{}) error {
	kind, ok := obj.Kind(name)
	if !ok {
		return fmt.Errorf("property '%s' on '%s': %w", name, obj.Path(), tool.ErrPropertyNotFound)
	}

	value = coerce.Normalize(value)

	switch kind {
	case host.KindString:
		s, ok := coerce.String(value)
		if !ok {
			return conversionError(name, kind)
		}
		return obj.Set(name, s)

	case host.KindInt:
		n, ok := coerce.Number(value)
		if !ok {
			return conversionError(name, kind)
		}
		return obj.Set(name, int64(n))

	case host.KindFloat:
		n, ok := coerce.Number(value)
		if !ok {
			return conversionError(name, kind)
		}
		return obj.Set(name, n)

	case host.KindBool:
		b, ok := coerce.Bool(value)
		if !ok {
			return conversionError(name, kind)
		}
		return obj.Set(name, b)

	case host.KindObject:
		path, ok := coerce.String(value)
		if !ok {
			return conversionError(name, kind)
		}
		if m.objects == nil {
			return fmt.Errorf("property '%s' needs an object resolver to set '%s'", name, path)
		}
		ref, err := m.objects.Resolve(path)
		if err != nil {
			return fmt.Errorf("property '%s': failed to resolve object '%s': %w", name, path, err)
		}
		return obj.Set(name, ref)

	case host.KindArray:
		arr, ok := coerce.Array(value)
		if !ok {
			return conversionError(name, kind)
		}
		return obj.Set(name, arr)

	case host.KindStruct:
		s, ok := coerce.ToPropertyString(value)
		if !ok {
			return conversionError(name, kind)
		}
		return obj.Set(name, s)
	}

	return fmt.Errorf("property '%s' has kind '%s': %w", name, kind, tool.ErrPropertyUnsupported)
}

// Property reads the current value of the named property.
func (m *Marshaller) Property(obj host.Object, name string) (interface{}, error) {
	if _, ok := obj.Kind(name); !ok {
		return nil, fmt.Errorf("property '%s' on '%s': %w", name, obj.Path(), tool.ErrPropertyNotFound)
	}
	return obj.Get(name)
}

// PropertyJSON reads the named property and serializes it for the
// caller: strings are quoted and escaped, numbers formatted directly,
// object references collapse to their canonical path.
func (m *Marshaller) PropertyJSON(obj host.Object, name string) (string, error) {
	v, err := m.Property(obj, name)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(flattenRefs(v))
	if err != nil {
		return "", fmt.Errorf("failed to serialize property '%s': %w", name, err)
	}
	return string(data), nil
}

// flattenRefs replaces live object handles with their paths so results
// always serialize, containers included.
func flattenRefs(v interface{}) interface{} {
	switch t := v.(type) {
	case host.Object:
		return t.Path()
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = flattenRefs(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = flattenRefs(e)
		}
		return out
	default:
		return v
	}
}

func conversionError(name string, kind host.PropertyKind) error {
	return fmt.Errorf("cannot convert value for property '%s' of kind '%s'", name, kind)
}
