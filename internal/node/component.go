package node

// runGeneric is the run loop behind every built-in component factory. Real
// archive/index/importer/exporter/source/sink implementations are external
// collaborators per spec.md §1; this loop is what spec.md §4.7's factory
// table actually spawns in this repository, sufficient to drive the
// end-to-end spawn/kill/status/shutdown scenarios of spec.md §8.4: it
// tracks who it has been wired to, answers status, and terminates cleanly
// on shutdown.
func runGeneric(h *Handle) {
	defer close(h.done)
	wired := make(map[string][]*Handle)
	for msg := range h.mailbox {
		switch msg.Kind {
		case MsgShutdown:
			if shutdownObserved != nil {
				shutdownObserved(h)
			}
			return
		case MsgWire:
			wired[msg.Wire.Role] = append(wired[msg.Wire.Role], msg.Wire.Target)
			if msg.Reply != nil {
				msg.Reply <- Reply{Value: map[string]any{"ok": true}}
			}
		case MsgStatus:
			if msg.Reply != nil {
				peers := make(map[string]any, len(wired))
				for role, hs := range wired {
					peers[role] = len(hs)
				}
				msg.Reply <- Reply{Value: map[string]any{
					"type":  h.Type,
					"label": h.Label,
					"wired": peers,
				}}
			}
		case MsgSend:
			if msg.Reply != nil {
				msg.Reply <- Reply{Value: map[string]any{"ok": true, "atom": msg.Atom}}
			}
		}
	}
}

// shutdownObserved, when non-nil, is called synchronously the moment a
// component's run loop acts on MsgShutdown, strictly before its Done
// channel closes. Nil in production; tests that need to observe the exact
// order components terminate in set it to record each call.
var shutdownObserved func(h *Handle)

// Factory constructs and starts a component of the given type under the
// given label, returning its Handle. Factories never block past launching
// the component's goroutine.
type Factory func(n *Node, typ, label string, opts map[string]string, args []string) (*Handle, error)

// genericFactory is the default Factory bound to every built-in component
// type at Node construction: it starts runGeneric and returns immediately.
func genericFactory(n *Node, typ, label string, opts map[string]string, args []string) (*Handle, error) {
	h := newHandle(typ, label)
	go runGeneric(h)
	return h, nil
}

// builtinComponentTypes lists every component type spec.md §2's data flow
// names, each bound to genericFactory at Node construction (DESIGN NOTES:
// "global factory tables" become a process-scoped struct built once in New,
// never a package-level mutable global).
var builtinComponentTypes = []string{
	"archive", "index", "importer", "exporter",
	"source", "sink", "accountant", "type-registry",
	"filesystem", "eraser",
}

func defaultComponentFactories() map[string]Factory {
	fs := make(map[string]Factory, len(builtinComponentTypes))
	for _, t := range builtinComponentTypes {
		fs[t] = genericFactory
	}
	return fs
}
