package node

import (
	"os"
	"strconv"
	"sync"

	"github.com/vastcore/vast/internal/obslog"
	"github.com/vastcore/vast/internal/registry"
	"github.com/vastcore/vast/pkg/vasterr"
)

// CommandHandler answers a command verb other than the four built-ins
// (spawn, kill, send, status), which HandleCommand handles itself. It
// receives the options map and positional arguments HandleCommand parsed
// out of the full command line.
type CommandHandler func(n *Node, opts map[string]string, args []string) (map[string]any, error)

// Node owns a base directory, the component registry, per-type label
// counters, and the two static factory tables built once at construction
// (DESIGN NOTES: a process-scoped configuration struct, never a mutable
// package global).
type Node struct {
	Name    string
	BaseDir string

	mu            sync.Mutex
	reg           *registry.Registry
	labelCounters map[string]int

	componentFactories map[string]Factory
	commandFactories   map[string]CommandHandler
}

// New creates a node rooted at baseDir, creating the directory if absent
// and registering the filesystem component. Those two steps are the only
// ways New fails; it returns the error to the caller, and both command
// entry points treat it as fatal and exit.
func New(name, baseDir string) (*Node, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, vasterr.Wrap(vasterr.IOError, "create node base directory", err)
	}
	n := &Node{
		Name:               name,
		BaseDir:            baseDir,
		reg:                registry.New(),
		labelCounters:      make(map[string]int),
		componentFactories: defaultComponentFactories(),
	}
	n.commandFactories = n.defaultCommandFactories()

	h, err := genericFactory(n, "filesystem", "filesystem", nil, nil)
	if err != nil {
		return nil, vasterr.Wrap(vasterr.Unspecified, "spawn filesystem component", err)
	}
	if err := n.reg.Insert(registry.Component{Type: "filesystem", Label: "filesystem", Handle: h}); err != nil {
		return nil, vasterr.Wrap(vasterr.Unspecified, "register filesystem component", err)
	}
	n.monitor(h)
	obslog.Info("node ready", "node", n.Name, "base_dir", n.BaseDir)
	return n, nil
}

// nextLabel implements spec.md §4.7 step 2: spawn.label option if present,
// else the bare type for single-instance (singleton) types, else
// "type-N" with N the post-increment of a per-type counter.
func (n *Node) nextLabel(typ string, opts map[string]string) string {
	if label, ok := opts["spawn.label"]; ok && label != "" {
		return label
	}
	if registry.SingletonTypes[typ] {
		return typ
	}
	n.labelCounters[typ]++
	return typ + "-" + strconv.Itoa(n.labelCounters[typ])
}
