package node

import (
	"context"
	"runtime"

	"github.com/vastcore/vast/internal/registry"
	"github.com/vastcore/vast/pkg/table"
)

// Status gathers node-wide metrics and fans MsgStatus out to every
// registered component, merging replies into a nested map keyed by node
// name and then component label, per spec.md §4.7's status operation.
// A component that times out or errors contributes its rendered error
// instead of a status map, rather than aborting the whole request.
func (n *Node) Status(ctx context.Context) (map[string]any, error) {
	n.mu.Lock()
	var all []registry.Component
	n.reg.All(func(c registry.Component) bool {
		all = append(all, c)
		return true
	})
	n.mu.Unlock()

	components := make(map[string]any, len(all))
	for _, c := range all {
		h := c.Handle.(*Handle)
		reqCtx, cancel := context.WithTimeout(ctx, DefaultInitialRequestTimeout)
		val, err := h.Request(reqCtx, Message{Kind: MsgStatus})
		cancel()
		if err != nil {
			components[c.Label] = err.Error()
			continue
		}
		components[c.Label] = val
	}

	system := map[string]any{
		"running-components": len(all),
		"detached-components": 0,
		"in-memory-table-slices": table.Instances(),
		"workers":              runtime.GOMAXPROCS(0),
	}

	return map[string]any{
		n.Name: map[string]any{
			"system":     system,
			"components": components,
		},
	}, nil
}
