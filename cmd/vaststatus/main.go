package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vastcore/vast/internal/node"
)

func main() {
	baseDir := flag.String("base-dir", "./vast-node", "node base directory")
	name := flag.String("name", "vast-node", "node name")
	flag.Parse()

	n, err := node.New(*name, *baseDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(NewModel(n)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
