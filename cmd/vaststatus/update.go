package main

import tea "github.com/charmbracelet/bubbletea"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		m.status = msg.status
		m.err = msg.err
		labels := m.componentLabels()
		if m.cursor >= len(labels) {
			m.cursor = max(0, len(labels)-1)
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(pollCmd(m.n), tickCmd())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.componentLabels())-1 {
				m.cursor++
			}
			return m, nil
		case "r":
			return m, pollCmd(m.n)
		}
	}
	return m, nil
}
