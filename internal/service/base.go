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
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// Base gives a domain service its logging and validation plumbing.
// Embed it and construct with NewBase.
type Base struct {
	name   string
	ctx    *Context
	logger *log.Logger
}

// NewBase binds a service name to the shared context. Log lines carry
// the service name as a structured key.
func NewBase(name string, ctx *Context) Base {
	return Base{
		name:   name,
		ctx:    ctx,
		logger: ctx.Logger().With("service", name),
	}
}

// Name returns the service name.
func (b *Base) Name() string {
	return b.name
}

// Context returns the shared service context for cross-service lookup
// and host access.
func (b *Base) Context() *Context {
	return b.ctx
}

// LogInfo logs through the context's sink.
func (b *Base) LogInfo(msg string, keyvals ...interface{}) {
	b.logger.Info(msg, keyvals...)
}

// LogWarning logs through the context's sink.
func (b *Base) LogWarning(msg string, keyvals ...interface{}) {
	b.logger.Warn(msg, keyvals...)
}

// LogError logs through the context's sink.
func (b *Base) LogError(msg string, keyvals ...interface{}) {
	b.logger.Error(msg, keyvals...)
}

// ValidateString rejects empty or blank parameter values.
func (b *Base) ValidateString(value, param string) error {
	if strings.TrimSpace(value) == "" {
		return tool.NewParamError(param, tool.ErrParamEmpty)
	}
	return nil
}

// ValidateArray rejects empty parameter arrays.
func (b *Base) ValidateArray(values []interface{}, param string) error {
	if len(values) == 0 {
		return tool.NewParamError(param, tool.ErrParamEmpty)
	}
	return nil
}
