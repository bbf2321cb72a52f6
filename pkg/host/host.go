// Package host defines the narrow interfaces through which the automation
// layer reaches the embedding editor: object/property reflection, asset
// lookup, and the active world. Implementations live host-side (or in
// internal/sandbox for development); nothing in this package executes logic.
package host

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

// PropertyKind is the semantic type a host property declares through
// reflection. The marshaller dispatches on it to pick a converter.
type PropertyKind int

const (
	KindUnknown PropertyKind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindObject
	KindArray
	KindStruct
)

func (k PropertyKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Object is a live host object exposing named properties by reflection.
type Object interface {
	// Path returns the object's canonical path, unique within the host.
	Path() string

	// Class returns the host class name of the object.
	Class() string

	// PropertyNames lists the properties the object declares.
	PropertyNames() []string

	// Kind reports the declared semantic type of a named property.
	// ok is false when the property does not exist.
	Kind(name string) (PropertyKind, bool)

	// Get reads the current value of a named property.
	Get(name string) (interface{}, error)

	// Set writes a typed value to a named property. The value must already
	// match the property's kind; callers convert via the marshaller.
	Set(name string, value interface{}) error
}

// ObjectResolver resolves a canonical path to a live object handle.
type ObjectResolver interface {
	Resolve(path string) (Object, error)
}

// World is the host's active world/editor surface.
type World interface {
	// Name identifies the world (level, map, document).
	Name() string

	// Objects lists every object currently in the world.
	Objects() []Object

	// Find locates an object in the world by its short name.
	Find(name string) (Object, bool)
}
