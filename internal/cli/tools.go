package cli

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
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rizome-dev/stagehand/pkg/tool"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ToolsCmd creates the tools command group
func ToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect and manage registered scene tools",
		Long:  `Commands for listing, describing, executing and toggling the tools held by the dispatch registry.`,
	}

	cmd.AddCommand(
		toolsListCmd(),
		toolsDescribeCmd(),
		toolsExecCmd(),
		toolsEnableCmd(),
		toolsDisableCmd(),
		toolsToggleCmd(),
	)

	return cmd
}

func toolsListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime("")
			if err != nil {
				return err
			}
			defer rt.Close()

			var tools []tool.Tool
			if category != "" {
				tools = rt.registry.ToolsByCategory(category)
			} else {
				tools = rt.registry.Tools()
			}

			disabled := make(map[string]bool)
			for _, name := range rt.registry.DisabledTools() {
				disabled[name] = true
			}

			showTools(tools, disabled)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list tools in this category")

	return cmd
}

// showTools prints tools grouped by category, with enabled indicators
// when stdout is a terminal.
func showTools(tools []tool.Tool, disabled map[string]bool) {
	if len(tools) == 0 {
		fmt.Println("No tools registered.")
		return
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		MarginTop(1)

	enabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("161"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	// Group by category
	categories := make(map[string][]tool.Tool)
	for _, t := range tools {
		category := t.Category
		if category == "" {
			category = "Other"
		}
		categories[category] = append(categories[category], t)
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, category := range names {
		if isTTY {
			fmt.Println(titleStyle.Render(category))
		} else {
			fmt.Printf("\n[%s]\n", category)
		}

		for _, t := range categories[category] {
			if isTTY {
				dot := enabledStyle.Render("●")
				if disabled[t.Name] {
					dot = disabledStyle.Render("●")
				}
				fmt.Printf("  %s %s %s\n", dot, t.Name, descStyle.Render(t.Description))
			} else {
				state := ""
				if disabled[t.Name] {
					state = " [disabled]"
				}
				fmt.Printf("  %s%s - %s\n", t.Name, state, t.Description)
			}
		}
	}

	fmt.Printf("\nTotal: %d tool(s)\n", len(tools))
}

func toolsDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Show one tool's descriptor and parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime("")
			if err != nil {
				return err
			}
			defer rt.Close()

			name := args[0]
			t, ok := rt.registry.Find(name)
			if !ok {
				return fmt.Errorf("tool '%s' not found", name)
			}

			category := t.Category
			if category == "" {
				category = "Other"
			}

			fmt.Printf("Name:        %s\n", t.Name)
			fmt.Printf("Category:    %s\n", category)
			fmt.Printf("Description: %s\n", t.Description)

			if len(t.Parameters) == 0 {
				fmt.Println("Parameters:  (none)")
				return nil
			}

			fmt.Println("Parameters:")
			for _, p := range t.Parameters {
				required := ""
				if p.Required {
					required = " (required)"
				}
				fmt.Printf("  %s [%s]%s - %s\n", p.Name, p.Type, required, p.Description)
			}
			return nil
		},
	}
	return cmd
}

func toolsExecCmd() *cobra.Command {
	var scenePath string

	cmd := &cobra.Command{
		Use:   "exec <name> [key=value...]",
		Short: "Execute a tool and print its JSON result",
		Long: `Executes a registered tool against the sandbox world and prints the
JSON result envelope. Parameters are given as key=value pairs; load a
scene file with --scene to prepare objects and assets first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tool.Params{}
			for _, arg := range args[1:] {
				key, value, found := strings.Cut(arg, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid parameter %q (expected key=value)", arg)
				}
				params[key] = value
			}

			rt, err := openRuntime(scenePath)
			if err != nil {
				return err
			}
			defer rt.Close()

			fmt.Println(rt.registry.Execute(args[0], params))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "Scene file to load before executing")

	return cmd
}

func toolsEnableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable <name...>",
		Short: "Enable tools and persist the change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setEnabled(args, true)
		},
	}
	return cmd
}

func toolsDisableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable <name...>",
		Short: "Disable tools and persist the change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setEnabled(args, false)
		},
	}
	return cmd
}

func setEnabled(names []string, enabled bool) error {
	rt, err := openRuntime("")
	if err != nil {
		return err
	}
	defer rt.Close()

	for _, name := range names {
		if err := rt.registry.SetToolEnabled(name, enabled); err != nil {
			return err
		}
		if enabled {
			fmt.Printf("✅ Enabled '%s'\n", name)
		} else {
			fmt.Printf("🚫 Disabled '%s'\n", name)
		}
	}
	return nil
}
