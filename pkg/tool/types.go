package tool

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
	"github.com/rizome-dev/stagehand/pkg/coerce"
)

// Tool describes an externally invocable operation: the name callers dispatch
// on, the category it is listed under, and its declared parameter schema.
// A Tool is created at registration time and never mutated afterward.
type Tool struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category" yaml:"category"`
	Parameters  []Param `json:"parameters" yaml:"parameters"`
}

// Param defines a single tool parameter.
type Param struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"` // string, number, boolean, vector, rotator, color, margin, json
	Required    bool   `json:"required" yaml:"required"`
}

// RequiredParams returns the names of all required parameters in declaration
// order.
func (t Tool) RequiredParams() []string {
	var names []string
	for _, p := range t.Parameters {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Params carries the raw arguments of one invocation. Every value arrives as
// a string holding either a literal scalar or an embedded JSON fragment; use
// Value (or pkg/coerce directly) to recover the structured form.
type Params map[string]string

// Get returns the raw string for name, or "" when absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Has reports whether name was supplied at all, even as an empty string.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Value parses the named parameter into a JSON value. The second return is
// false only when the parameter is absent; parsing itself never fails and
// degrades to the raw string.
func (p Params) Value(name string) (interface{}, bool) {
	raw, ok := p[name]
	if !ok {
		return nil, false
	}
	return coerce.ParseString(raw), true
}
