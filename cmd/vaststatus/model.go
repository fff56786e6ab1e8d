package main

import (
	"context"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vastcore/vast/internal/node"
)

// pollInterval is how often the status tree is refreshed, mirroring
// hiveexplorer's 2s tea.Tick cadence for its own background refreshes.
const pollInterval = 2 * time.Second

// Model is the status TUI's Elm-architecture model: a node handle, its
// last-polled status document, and the cursor over the component list.
type Model struct {
	n       *node.Node
	status  map[string]any
	err     error
	cursor  int
	width   int
	height  int
	quitting bool
}

// NewModel builds a Model polling n's status on pollInterval.
func NewModel(n *node.Node) Model {
	return Model{n: n}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(pollCmd(m.n), tickCmd())
}

type statusMsg struct {
	status map[string]any
	err    error
}

func pollCmd(n *node.Node) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		status, err := n.Status(ctx)
		return statusMsg{status: status, err: err}
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// componentLabels returns the component labels from the current status
// document, sorted, so the cursor has something stable to index into.
func (m Model) componentLabels() []string {
	top, ok := m.status[m.n.Name].(map[string]any)
	if !ok {
		return nil
	}
	comps, ok := top["components"].(map[string]any)
	if !ok {
		return nil
	}
	labels := make([]string, 0, len(comps))
	for label := range comps {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
