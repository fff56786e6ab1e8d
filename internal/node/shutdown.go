package node

import (
	"context"

	"github.com/vastcore/vast/internal/fsdurable"
	"github.com/vastcore/vast/internal/obslog"
	"github.com/vastcore/vast/internal/registry"
)

// shutdownStages lists the component types torn down in order, per
// spec.md §4.7's exact sequential shutdown: accountant first, then the
// ingest pipeline one type at a time in the given order, then whatever
// else is registered, then the filesystem component last.
var shutdownStages = [][]string{
	{"accountant"},
	{"source", "importer", "archive", "index", "exporter"},
	{"sink", "eraser", "type-registry"},
	{"filesystem"},
}

// strictOrderStage reports whether stage i's components must be torn down
// one at a time, each fully terminated before the next is even signalled.
// Only the "remaining components" stage has no ordering requirement, since
// spec.md leaves its order unspecified; every other stage names a fixed
// sequence that a caller can observe.
func strictOrderStage(i int) bool {
	return i != len(shutdownStages)-2
}

// Shutdown tears the node down stage by stage. Components outside any
// named stage (future/unrecognized types) are folded into the third,
// "remainder" stage so every registered component is guaranteed to be
// stopped exactly once.
func (n *Node) Shutdown(ctx context.Context) error {
	obslog.Info("node shutdown starting", "node", n.Name)
	for i, stage := range shutdownStages {
		types := stage
		if !strictOrderStage(i) {
			types = n.remainderTypes(stage)
		}
		if err := n.shutdownStage(ctx, types, strictOrderStage(i)); err != nil {
			obslog.Error("node shutdown aborted", "node", n.Name, "stage", i, "err", err)
			return err
		}
	}
	obslog.Info("node shutdown complete", "node", n.Name)
	return fsdurable.SyncTree(n.BaseDir)
}

// remainderTypes extends the third stage with any registered component
// type not already named by an earlier or later stage, so nothing is
// silently skipped.
func (n *Node) remainderTypes(base []string) []string {
	named := make(map[string]bool)
	for _, stage := range shutdownStages {
		for _, t := range stage {
			named[t] = true
		}
	}
	types := append([]string(nil), base...)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reg.All(func(c registry.Component) bool {
		if !named[c.Type] {
			named[c.Type] = true
			types = append(types, c.Type)
		}
		return true
	})
	return types
}

// shutdownStage tears down every component registered under one of types.
// When strict is true, handles are stopped one at a time in types' order
// (and in registration order within a type), so the caller can observe a
// single, deterministic termination sequence. When strict is false, every
// handle is signalled at once and the stage completes once all of them
// have reported terminated, since their relative order carries no meaning.
func (n *Node) shutdownStage(ctx context.Context, types []string, strict bool) error {
	n.mu.Lock()
	var handles []*Handle
	for _, typ := range types {
		for _, c := range n.reg.EqualRange(typ) {
			handles = append(handles, c.Handle.(*Handle))
		}
	}
	n.mu.Unlock()

	if strict {
		for _, h := range handles {
			if err := n.stopComponent(ctx, h); err != nil {
				return err
			}
		}
		return nil
	}

	for _, h := range handles {
		if err := h.Shutdown(ctx); err != nil {
			return err
		}
	}
	for _, h := range handles {
		if err := n.awaitTerminated(ctx, h); err != nil {
			return err
		}
	}
	n.mu.Lock()
	for _, h := range handles {
		n.reg.Erase(h)
	}
	n.mu.Unlock()
	return nil
}

// stopComponent signals h, waits for it to terminate, and deregisters it,
// all before returning control to the caller.
func (n *Node) stopComponent(ctx context.Context, h *Handle) error {
	if err := h.Shutdown(ctx); err != nil {
		return err
	}
	if err := n.awaitTerminated(ctx, h); err != nil {
		return err
	}
	n.mu.Lock()
	n.reg.Erase(h)
	n.mu.Unlock()
	return nil
}

func (n *Node) awaitTerminated(ctx context.Context, h *Handle) error {
	select {
	case <-h.Done():
		obslog.Component(h.Type, h.Label).Info("component shut down")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
