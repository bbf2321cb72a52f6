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
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/rizome-dev/stagehand/internal/config"
	"github.com/rizome-dev/stagehand/internal/service"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// Registry manages registered tools and their enabled state. Obtain one
// through Builder.Build; it is ready on construction.
type Registry struct {
	mu         sync.RWMutex
	tools      map[string]Registration
	registered []Registration // successful registrations in order, for Refresh
	disabled   map[string]bool
	observers  []func(disabled []string)
	shutdown   bool

	store  *config.Store
	sctx   *service.Context
	logger *log.Logger
}

// Register adds a tool immediately. A duplicate name is rejected with a
// warning and the first registration kept.
func (r *Registry) Register(t tool.Tool, execute Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registerLocked(Registration{Tool: t, Execute: execute})
}

func (r *Registry) registerLocked(reg Registration) {
	name := reg.Tool.Name
	if name == "" {
		r.logger.Warn("ignoring tool registration without a name")
		return
	}
	if _, exists := r.tools[name]; exists {
		r.logger.Warn("duplicate tool registration ignored, keeping first", "tool", name)
		return
	}
	r.tools[name] = reg
	r.registered = append(r.registered, reg)
}

// Execute runs a named tool and returns its JSON result. The disabled
// check runs before the existence check, so a disabled-but-unregistered
// name still reports disabled. Execution is synchronous; a handler
// error or panic becomes a failure envelope, never a crash. Calling
// Execute on a shut-down registry is a host programming error and
// panics.
func (r *Registry) Execute(name string, params tool.Params) string {
	r.mu.RLock()
	if r.shutdown {
		r.mu.RUnlock()
		panic("registry: Execute after Shutdown")
	}
	disabled := r.disabled[name]
	reg, exists := r.tools[name]
	r.mu.RUnlock()

	logger := r.logger.With("execution", uuid.NewString(), "tool", name)

	if disabled {
		logger.Warn("execution blocked", "reason", "disabled")
		return tool.FailCode(fmt.Sprintf("Tool '%s' is disabled", name), tool.CodeToolDisabled)
	}
	if !exists {
		logger.Warn("execution failed", "reason", "unknown tool")
		return tool.Failf("Tool '%s' not found", name)
	}
	for _, p := range reg.Tool.Parameters {
		if p.Required && !params.Has(p.Name) {
			logger.Warn("execution failed", "reason", "missing parameter", "parameter", p.Name)
			return tool.Failf("Missing required parameter: %s", p.Name)
		}
	}
	if reg.Execute == nil {
		logger.Warn("execution failed", "reason", "no execute function")
		return tool.Failf("Tool '%s' has no execute function", name)
	}

	start := time.Now()
	result, err := r.invoke(reg, params)
	if err != nil {
		logger.Error("execution failed", "error", err, "duration", time.Since(start))
		return tool.Fail(err.Error())
	}
	logger.Info("executed", "duration", time.Since(start))
	return result
}

// invoke runs the handler with panic recovery so a misbehaving tool
// still produces a well-formed failure envelope.
func (r *Registry) invoke(reg Registration, params tool.Params) (result string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool panicked: %v", rec)
		}
	}()
	return reg.Execute(r.sctx, params)
}

// Find returns the descriptor registered under name.
func (r *Registry) Find(name string) (tool.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.tools[name]
	if !ok {
		return tool.Tool{}, false
	}
	return reg.Tool, true
}

// Tools returns all registered tools sorted by name.
func (r *Registry) Tools() []tool.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.toolsLocked(func(tool.Tool) bool { return true })
}

// ToolsByCategory returns the registered tools in a category, sorted by
// name.
func (r *Registry) ToolsByCategory(category string) []tool.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.toolsLocked(func(t tool.Tool) bool { return t.Category == category })
}

// EnabledTools returns the registered tools not in the disabled set,
// sorted by name.
func (r *Registry) EnabledTools() []tool.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.toolsLocked(func(t tool.Tool) bool { return !r.disabled[t.Name] })
}

func (r *Registry) toolsLocked(keep func(tool.Tool) bool) []tool.Tool {
	tools := make([]tool.Tool, 0, len(r.tools))
	for _, reg := range r.tools {
		if keep(reg.Tool) {
			tools = append(tools, reg.Tool)
		}
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// DisabledTools returns the disabled set sorted by name. Names need not
// be registered; disabling survives unregistration.
func (r *Registry) DisabledTools() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.disabledNamesLocked()
}

func (r *Registry) disabledNamesLocked() []string {
	names := make([]string, 0, len(r.disabled))
	for name := range r.disabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetToolEnabled flips one tool's enabled state. Persistence and
// observer notification happen only on an actual change.
func (r *Registry) SetToolEnabled(name string, enabled bool) error {
	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return tool.ErrShutdown
	}
	changed := false
	if enabled {
		if r.disabled[name] {
			delete(r.disabled, name)
			changed = true
		}
	} else if !r.disabled[name] {
		r.disabled[name] = true
		changed = true
	}
	if !changed {
		r.mu.Unlock()
		return nil
	}
	names := r.disabledNamesLocked()
	observers := append(([]func([]string))(nil), r.observers...)
	r.mu.Unlock()

	r.logger.Info("tool state changed", "tool", name, "enabled", enabled)
	return r.persistAndNotify(names, observers)
}

// SetDisabledTools replaces the whole disabled set. Persistence and
// observer notification happen only on an actual change.
func (r *Registry) SetDisabledTools(names []string) error {
	next := make(map[string]bool, len(names))
	for _, name := range names {
		if name != "" {
			next[name] = true
		}
	}

	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return tool.ErrShutdown
	}
	if sameSet(r.disabled, next) {
		r.mu.Unlock()
		return nil
	}
	r.disabled = next
	sorted := r.disabledNamesLocked()
	observers := append(([]func([]string))(nil), r.observers...)
	r.mu.Unlock()

	r.logger.Info("disabled set replaced", "disabled", len(sorted))
	return r.persistAndNotify(sorted, observers)
}

func (r *Registry) persistAndNotify(disabled []string, observers []func([]string)) error {
	if err := r.store.SetDisabledTools(disabled); err != nil {
		return fmt.Errorf("failed to persist disabled tools: %w", err)
	}
	for _, notify := range observers {
		notify(disabled)
	}
	return nil
}

// OnDisabledChanged registers an observer called with the new disabled
// set after every persisted change.
func (r *Registry) OnDisabledChanged(fn func(disabled []string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// Refresh reloads the disabled set from the store and rebuilds the tool
// table from the original registrations.
func (r *Registry) Refresh() error {
	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return tool.ErrShutdown
	}
	r.mu.Unlock()

	if err := r.store.Load(); err != nil {
		return fmt.Errorf("failed to reload tool config: %w", err)
	}
	names := r.store.DisabledTools()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.disabled = make(map[string]bool, len(names))
	for _, name := range names {
		r.disabled[name] = true
	}

	registered := r.registered
	r.tools = make(map[string]Registration, len(registered))
	r.registered = nil
	for _, reg := range registered {
		r.registerLocked(reg)
	}

	r.logger.Info("registry refreshed", "tools", len(r.tools), "disabled", len(r.disabled))
	return nil
}

// Shutdown clears the table. The registry is terminal afterwards:
// Execute panics, mutations return ErrShutdown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shutdown {
		return
	}
	r.shutdown = true
	r.tools = nil
	r.registered = nil
	r.observers = nil
	r.logger.Info("tool registry shut down")
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
