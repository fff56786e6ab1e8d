package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selected   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("status error: %v", m.err)) + "\n"
	}
	if m.status == nil {
		return dimStyle.Render("waiting for first status poll...") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.n.Name) + "\n\n")

	top, _ := m.status[m.n.Name].(map[string]any)
	system, _ := top["system"].(map[string]any)
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"running=%v  workers=%v  table-slices=%v",
		system["running-components"], system["workers"], system["in-memory-table-slices"],
	)) + "\n\n")

	labels := m.componentLabels()
	comps, _ := top["components"].(map[string]any)
	for i, label := range labels {
		line := fmt.Sprintf("%s  %v", label, comps[label])
		if i == m.cursor {
			b.WriteString(selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("↑/↓ select · r refresh · q quit"))
	return b.String()
}
