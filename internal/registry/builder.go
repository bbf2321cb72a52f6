// Package registry implements the tool registry: deferred two-phase
// registration, enable/disable persistence, and synchronous dispatch of
// named tools to their handlers. Every Execute result is a JSON
// envelope; callers branch on its success field alone.
package registry

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
	"sync"

	"github.com/rizome-dev/stagehand/internal/config"
	"github.com/rizome-dev/stagehand/internal/service"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// Handler executes a tool against the shared service context and
// returns the JSON payload for the caller. Execution is synchronous on
// the caller's thread; handlers may call host APIs that are not
// thread-safe.
type Handler func(sctx *service.Context, params tool.Params) (string, error)

// Registration binds a tool descriptor to its handler. The descriptor
// is immutable after registration; identity is the tool name.
type Registration struct {
	Tool    tool.Tool
	Execute Handler
}

// Builder collects registrations made before the registry exists.
// Tools registering at module load enqueue here; Build flushes the
// queue into a ready registry, so there is no "initialized yet" state
// to check at call sites.
type Builder struct {
	mu      sync.Mutex
	pending []Registration
}

// NewBuilder creates an empty registration queue.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register enqueues a tool for the next Build.
func (b *Builder) Register(t tool.Tool, execute Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, Registration{Tool: t, Execute: execute})
}

// Build loads the disabled set from the store, registers the builtin
// introspection tools, then flushes the queued registrations in order
// (duplicate names are warned about and skipped, first wins). The
// returned registry is ready for Execute.
func (b *Builder) Build(store *config.Store, sctx *service.Context) (*Registry, error) {
	if store == nil {
		return nil, fmt.Errorf("config store is required")
	}
	if sctx == nil {
		return nil, fmt.Errorf("service context is required")
	}

	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load tool config: %w", err)
	}

	r := &Registry{
		tools:    make(map[string]Registration),
		disabled: make(map[string]bool),
		store:    store,
		sctx:     sctx,
		logger:   sctx.Logger().WithPrefix("registry"),
	}
	for _, name := range store.DisabledTools() {
		r.disabled[name] = true
	}

	r.registerBuiltinTools()

	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()

	r.mu.Lock()
	for _, reg := range pending {
		r.registerLocked(reg)
	}
	r.mu.Unlock()

	r.logger.Info("tool registry ready",
		"tools", len(r.tools),
		"disabled", len(r.disabled))

	return r, nil
}
