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

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rizome-dev/stagehand/pkg/tool"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// toggleItem is one tool row in the toggle list. The checkbox shows the
// enabled state.
type toggleItem struct {
	tool    tool.Tool
	enabled bool
}

func (i toggleItem) FilterValue() string { return i.tool.Name }
func (i toggleItem) Title() string {
	checkbox := "☐"
	if i.enabled {
		checkbox = "☑"
	}
	return fmt.Sprintf("%s %s", checkbox, i.tool.Name)
}
func (i toggleItem) Description() string {
	category := i.tool.Category
	if category == "" {
		category = "Other"
	}
	return fmt.Sprintf("[%s] %s", category, i.tool.Description)
}

// toggleModel drives the interactive enable/disable list. Nothing is
// persisted until the user confirms with enter.
type toggleModel struct {
	list      list.Model
	enabled   map[string]bool
	confirmed bool
}

func (m toggleModel) Init() tea.Cmd {
	return nil
}

func (m toggleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case " ":
			// Toggle selection
			if i, ok := m.list.SelectedItem().(toggleItem); ok {
				idx := m.list.Index()
				m.enabled[i.tool.Name] = !m.enabled[i.tool.Name]

				// Update the item in the list
				items := m.list.Items()
				if idx < len(items) {
					if item, ok := items[idx].(toggleItem); ok {
						item.enabled = !item.enabled
						items[idx] = item
						m.list.SetItems(items)
					}
				}
			}
		case "a":
			// Enable all
			items := m.list.Items()
			for i, item := range items {
				if tItem, ok := item.(toggleItem); ok {
					tItem.enabled = true
					m.enabled[tItem.tool.Name] = true
					items[i] = tItem
				}
			}
			m.list.SetItems(items)
		case "n":
			// Disable all
			items := m.list.Items()
			for i, item := range items {
				if tItem, ok := item.(toggleItem); ok {
					tItem.enabled = false
					m.enabled[tItem.tool.Name] = false
					items[i] = tItem
				}
			}
			m.list.SetItems(items)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m toggleModel) View() string {
	enabledCount := 0
	for _, enabled := range m.enabled {
		if enabled {
			enabledCount++
		}
	}

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	instructionsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	status := statusStyle.Render(fmt.Sprintf("Enabled: %d/%d tools", enabledCount, len(m.enabled)))
	instructions := instructionsStyle.Render("Space to toggle • a to enable all • n to disable all • Enter to save • q to cancel")

	return m.list.View() + "\n\n" + status + "\n" + instructions
}

func toolsToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Interactively enable or disable tools",
		Long:  `Opens a checkbox list of all registered tools. Changes are persisted to the config file when confirmed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("toggle requires an interactive terminal")
			}

			rt, err := openRuntime("")
			if err != nil {
				return err
			}
			defer rt.Close()

			tools := rt.registry.Tools()
			if len(tools) == 0 {
				fmt.Println("No tools registered.")
				return nil
			}

			disabled := make(map[string]bool)
			for _, name := range rt.registry.DisabledTools() {
				disabled[name] = true
			}

			listItems := make([]list.Item, len(tools))
			enabled := make(map[string]bool, len(tools))
			for i, t := range tools {
				listItems[i] = toggleItem{tool: t, enabled: !disabled[t.Name]}
				enabled[t.Name] = !disabled[t.Name]
			}

			const defaultWidth = 70
			listHeight := len(tools)*3 + 10
			if listHeight > 30 {
				listHeight = 30
			}

			l := list.New(listItems, list.NewDefaultDelegate(), defaultWidth, listHeight)
			l.Title = "Toggle tools"
			l.SetShowStatusBar(true)
			l.SetFilteringEnabled(true)
			l.Styles.Title = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Padding(0, 1)

			p := tea.NewProgram(toggleModel{list: l, enabled: enabled})
			result, err := p.Run()
			if err != nil {
				return err
			}

			m, ok := result.(toggleModel)
			if !ok || !m.confirmed {
				fmt.Println("Cancelled, no changes saved.")
				return nil
			}

			var nowDisabled []string
			for name, on := range m.enabled {
				if !on {
					nowDisabled = append(nowDisabled, name)
				}
			}
			if err := rt.registry.SetDisabledTools(nowDisabled); err != nil {
				return err
			}

			fmt.Printf("✅ Saved: %d enabled, %d disabled\n", len(m.enabled)-len(nowDisabled), len(nowDisabled))
			return nil
		},
	}
	return cmd
}
