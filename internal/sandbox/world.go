// Package sandbox is the development host: an in-memory world of
// objects with typed property bags, a SQLite-backed asset index, and
// YAML scene fixtures. It implements the host-side collaborator
// interfaces so the automation layer can be driven without a real
// editor. None of the dispatch core's invariants live here.
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
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/rizome-dev/stagehand/pkg/host"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// Object is an in-memory host object with a declared property schema.
type Object struct {
	mu     sync.RWMutex
	path   string
	class  string
	kinds  map[string]host.PropertyKind
	values map[string]interface{}
}

// NewObject creates an object with no properties declared yet.
func NewObject(objectPath, class string) *Object {
	return &Object{
		path:   objectPath,
		class:  class,
		kinds:  make(map[string]host.PropertyKind),
		values: make(map[string]interface{}),
	}
}

// DeclareProperty adds a property to the object's schema. A nil initial
// value gets the kind's zero value. Re-declaring replaces the previous
// declaration.
func (o *Object) DeclareProperty(name string, kind host.PropertyKind, initial interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.kinds[name] = kind
	if initial == nil {
		initial = zeroValue(kind)
	}
	o.values[name] = initial
}

func zeroValue(kind host.PropertyKind) interface{} {
	switch kind {
	case host.KindString, host.KindStruct:
		return ""
	case host.KindInt:
		return int64(0)
	case host.KindFloat:
		return float64(0)
	case host.KindBool:
		return false
	case host.KindArray:
		return []interface{}{}
	default:
		return nil
	}
}

// Path returns the object's canonical path.
func (o *Object) Path() string { return o.path }

// Class returns the object's class name.
func (o *Object) Class() string { return o.class }

// Name returns the short name, the last segment of the path.
func (o *Object) Name() string { return path.Base(o.path) }

// PropertyNames lists declared properties in sorted order.
func (o *Object) PropertyNames() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	names := make([]string, 0, len(o.kinds))
	for name := range o.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kind reports the declared kind of a property.
func (o *Object) Kind(name string) (host.PropertyKind, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	kind, ok := o.kinds[name]
	return kind, ok
}

// Get reads a property value.
func (o *Object) Get(name string) (interface{}, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if _, ok := o.kinds[name]; !ok {
		return nil, fmt.Errorf("property '%s' on '%s': %w", name, o.path, tool.ErrPropertyNotFound)
	}
	return o.values[name], nil
}

// Set writes a property value. The value must already match the
// declared kind.
func (o *Object) Set(name string, value interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.kinds[name]; !ok {
		return fmt.Errorf("property '%s' on '%s': %w", name, o.path, tool.ErrPropertyNotFound)
	}
	o.values[name] = value
	return nil
}

// World is an in-memory scene keyed by object path. It implements both
// host.World and host.ObjectResolver.
type World struct {
	mu      sync.RWMutex
	name    string
	objects map[string]*Object
}

// NewWorld creates an empty world.
func NewWorld(name string) *World {
	if name == "" {
		name = "Sandbox"
	}
	return &World{
		name:    name,
		objects: make(map[string]*Object),
	}
}

// Name returns the world name.
func (w *World) Name() string { return w.name }

// Spawn adds an object at a path. The path must be unused.
func (w *World) Spawn(objectPath, class string) (*Object, error) {
	objectPath = strings.TrimSpace(objectPath)
	if objectPath == "" {
		return nil, fmt.Errorf("object path is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.objects[objectPath]; exists {
		return nil, fmt.Errorf("object '%s' already exists", objectPath)
	}
	obj := NewObject(objectPath, class)
	w.objects[objectPath] = obj
	return obj, nil
}

// Remove deletes the object at a path.
func (w *World) Remove(objectPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.objects[objectPath]; !exists {
		return fmt.Errorf("object '%s': %w", objectPath, tool.ErrObjectNotFound)
	}
	delete(w.objects, objectPath)
	return nil
}

// Objects lists every object sorted by path.
func (w *World) Objects() []host.Object {
	w.mu.RLock()
	defer w.mu.RUnlock()

	paths := make([]string, 0, len(w.objects))
	for p := range w.objects {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	objects := make([]host.Object, 0, len(paths))
	for _, p := range paths {
		objects = append(objects, w.objects[p])
	}
	return objects
}

// Find locates an object by its short name.
func (w *World) Find(name string) (host.Object, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, obj := range w.objects {
		if obj.Name() == name {
			return obj, true
		}
	}
	return nil, false
}

// Resolve returns the object at a canonical path.
func (w *World) Resolve(objectPath string) (host.Object, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	obj, ok := w.objects[objectPath]
	if !ok {
		return nil, fmt.Errorf("object '%s': %w", objectPath, tool.ErrObjectNotFound)
	}
	return obj, nil
}
