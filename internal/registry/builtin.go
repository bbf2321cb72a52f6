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

	"github.com/rizome-dev/stagehand/internal/service"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// registerBuiltinTools installs the introspection tools every registry
// carries. They live in the System category.
func (r *Registry) registerBuiltinTools() {
	r.Register(tool.Tool{
		Name:        "list_tools",
		Description: "List registered tools with their enabled state",
		Category:    "System",
		Parameters: []tool.Param{
			{Name: "category", Description: "Only list tools in this category", Type: "string", Required: false},
		},
	}, r.listTools)

	r.Register(tool.Tool{
		Name:        "describe_tool",
		Description: "Show a tool's description and parameter schema",
		Category:    "System",
		Parameters: []tool.Param{
			{Name: "name", Description: "Tool to describe", Type: "string", Required: true},
		},
	}, r.describeTool)

	r.Register(tool.Tool{
		Name:        "registry_status",
		Description: "Report tool counts and the disabled set",
		Category:    "System",
	}, r.registryStatus)
}

func (r *Registry) listTools(_ *service.Context, params tool.Params) (string, error) {
	category := params.Get("category")

	var tools []tool.Tool
	if category == "" {
		tools = r.Tools()
	} else {
		tools = r.ToolsByCategory(category)
	}

	disabled := make(map[string]bool)
	for _, name := range r.DisabledTools() {
		disabled[name] = true
	}

	entries := make([]interface{}, 0, len(tools))
	for _, t := range tools {
		entries = append(entries, map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
			"category":    t.Category,
			"enabled":     !disabled[t.Name],
		})
	}

	return tool.OK(map[string]interface{}{
		"tools": entries,
		"count": len(entries),
	}), nil
}

func (r *Registry) describeTool(_ *service.Context, params tool.Params) (string, error) {
	name := params.Get("name")

	t, ok := r.Find(name)
	if !ok {
		return "", fmt.Errorf("tool '%s' not found", name)
	}

	parameters := make([]interface{}, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		parameters = append(parameters, map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"type":        p.Type,
			"required":    p.Required,
		})
	}

	return tool.OK(map[string]interface{}{
		"name":        t.Name,
		"description": t.Description,
		"category":    t.Category,
		"parameters":  parameters,
	}), nil
}

func (r *Registry) registryStatus(_ *service.Context, params tool.Params) (string, error) {
	all := r.Tools()
	disabled := r.DisabledTools()

	categories := make(map[string]interface{})
	counts := make(map[string]int)
	for _, t := range all {
		category := t.Category
		if category == "" {
			category = "Other"
		}
		counts[category]++
	}
	for category, n := range counts {
		categories[category] = n
	}

	return tool.OK(map[string]interface{}{
		"total":      len(all),
		"enabled":    len(r.EnabledTools()),
		"disabled":   disabled,
		"categories": categories,
	}), nil
}
