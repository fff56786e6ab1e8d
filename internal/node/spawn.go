package node

import (
	"context"
	"strings"

	"github.com/vastcore/vast/internal/obslog"
	"github.com/vastcore/vast/internal/registry"
	"github.com/vastcore/vast/pkg/vasterr"
)

// Spawn implements spec.md §4.7's numbered spawn procedure, ported in
// spirit from original_source's node.cpp spawn_command: fullName is the
// whole command line ("spawn source zeek"), opts is the parsed options map
// (spawn.label, spawn.source.*, ...), args the remaining positional
// arguments after the component type token.
func (n *Node) Spawn(ctx context.Context, fullName string, opts map[string]string, args []string) (*Handle, error) {
	tokens := strings.Fields(fullName)
	if len(tokens) < 2 {
		return nil, vasterr.New(vasterr.InvalidSpawn, "spawn requires a component type")
	}
	typ := tokens[1]

	n.mu.Lock()
	defer n.mu.Unlock()

	label := n.nextLabel(typ, opts)

	if typ == "source" {
		opts = mergeSourceOptions(opts)
	}

	factory, ok := n.componentFactories[typ]
	if !ok {
		return nil, vasterr.New(vasterr.InvalidSpawn, "no factory registered for component type "+typ)
	}

	h, err := factory(n, typ, label, opts, args)
	if err != nil {
		return nil, err
	}

	if err := n.reg.Insert(registry.Component{Type: typ, Label: label, Handle: h}); err != nil {
		return nil, err
	}
	n.monitor(h)
	obslog.Component(typ, label).Info("component spawned")

	n.autoWire(ctx, typ, h)
	return h, nil
}

// monitor watches h's Done channel and deregisters it the moment its run
// loop exits, whether that exit was a requested shutdown or the component
// failing on its own — spec.md §2's "auto-unregistration on failure"
// responsibility for the node supervisor. Shutdown's own bookkeeping also
// erases handles it tore down itself; Erase is a harmless no-op the second
// time around.
func (n *Node) monitor(h *Handle) {
	go func() {
		<-h.Done()
		n.mu.Lock()
		n.reg.Erase(h)
		n.mu.Unlock()
		obslog.Component(h.Type, h.Label).Info("component terminated")
	}()
}

// mergeSourceOptions folds spawn.source.* entries into import.* (stripping
// the spawn.source. prefix), so a format reader sees one flat options view
// regardless of whether an option arrived as a source override or an
// import default, per spec.md §4.7 step 3.
func mergeSourceOptions(opts map[string]string) map[string]string {
	merged := make(map[string]string, len(opts))
	for k, v := range opts {
		merged[k] = v
	}
	const prefix = "spawn.source."
	for k, v := range opts {
		if strings.HasPrefix(k, prefix) {
			merged["import."+strings.TrimPrefix(k, prefix)] = v
		}
	}
	return merged
}

// autoWire implements spec.md §4.7 step 7's fixed wiring table: a new
// exporter is handed every existing archive, index and sink; a new
// importer is advertised to every existing source; a new sink is
// advertised to every existing exporter. No other auto-wiring occurs.
func (n *Node) autoWire(ctx context.Context, typ string, h *Handle) {
	switch typ {
	case "exporter":
		for _, c := range n.reg.EqualRange("archive") {
			wire(ctx, h, "archive", c.Handle.(*Handle))
		}
		for _, c := range n.reg.EqualRange("index") {
			wire(ctx, h, "index", c.Handle.(*Handle))
		}
		for _, c := range n.reg.EqualRange("sink") {
			wire(ctx, h, "sink", c.Handle.(*Handle))
		}
	case "importer":
		for _, c := range n.reg.EqualRange("source") {
			wire(ctx, c.Handle.(*Handle), "sink", h)
		}
	case "sink":
		for _, c := range n.reg.EqualRange("exporter") {
			wire(ctx, c.Handle.(*Handle), "sink", h)
		}
	}
}

func wire(ctx context.Context, to *Handle, role string, target *Handle) {
	_ = to.Send(ctx, Message{Kind: MsgWire, Wire: WirePayload{Role: role, Target: target}})
}
