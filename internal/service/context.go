// Package service provides the process-wide service context: named
// service lookup, host world/asset access, shared config values, and
// the structured logging sink. One context is constructed at module
// load and shared by every service and tool handler for its lifetime.
package service

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
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/rizome-dev/stagehand/internal/utils"
	"github.com/rizome-dev/stagehand/pkg/host"
)

// Context is the shared service locator. Reads and writes both take the
// same lock; mutation happens at load time and on occasional settings
// changes, so simple mutual exclusion beats fine-grained locking here.
type Context struct {
	mu       sync.RWMutex
	services map[string]interface{}
	values   map[string]interface{}
	logger   *log.Logger
	world    host.World
	assets   host.AssetIndex
	objects  host.ObjectResolver
}

// NewContext creates an empty context. A nil logger falls back to the
// default stderr logger.
func NewContext(logger *log.Logger) *Context {
	if logger == nil {
		logger = utils.InitDefaultLogger()
	}
	return &Context{
		services: make(map[string]interface{}),
		values:   make(map[string]interface{}),
		logger:   logger,
	}
}

// RegisterService adds a named service. Services register once at
// startup; a duplicate name is an error, not a replacement.
func (c *Context) RegisterService(name string, svc interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.services[name]; exists {
		return fmt.Errorf("service '%s' already registered", name)
	}
	c.services[name] = svc
	return nil
}

// Service returns the shared instance registered under name.
func (c *Context) Service(name string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	svc, ok := c.services[name]
	return svc, ok
}

// ServiceNames lists registered services in sorted order.
func (c *Context) ServiceNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.services))
	for name := range c.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetValue stores a shared config value.
func (c *Context) SetValue(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Value reads a shared config value.
func (c *Context) Value(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[key]
	return v, ok
}

// Logger returns the structured logging sink.
func (c *Context) Logger() *log.Logger {
	return c.logger
}

// SetWorld attaches the host's active world. The host calls this again
// when the active world changes.
func (c *Context) SetWorld(w host.World) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.world = w
}

// World returns the host's active world, nil when none is attached.
func (c *Context) World() host.World {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.world
}

// SetAssets attaches the host's asset index.
func (c *Context) SetAssets(a host.AssetIndex) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assets = a
}

// Assets returns the host's asset index, nil when none is attached.
func (c *Context) Assets() host.AssetIndex {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.assets
}

// SetObjects attaches the host's object resolver.
func (c *Context) SetObjects(r host.ObjectResolver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects = r
}

// Objects returns the host's object resolver, nil when none is attached.
func (c *Context) Objects() host.ObjectResolver {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.objects
}
