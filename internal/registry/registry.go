package registry

import "github.com/vastcore/vast/pkg/vasterr"

// SingletonTypes is the component-type set of which at most one instance
// may be registered per node, per spec.md §4.6.
var SingletonTypes = map[string]bool{
	"archive":       true,
	"importer":      true,
	"index":         true,
	"type-registry": true,
	"eraser":        true,
}

// Component pairs a component's opaque handle with its registry label.
// Handle is deliberately untyped (any): the registry is a storage multimap
// and has no business interpreting what a handle is, only comparing it for
// equality on Erase — grounded on hive/index.Index's Add/Remove/Get shape,
// restructured from an offset-keyed table into a type-keyed multimap.
type Component struct {
	Type  string
	Label string
	Handle any
}

// Registry is a multimap from component type to the components registered
// under it, in insertion order.
type Registry struct {
	byType map[string][]Component
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byType: make(map[string][]Component)}
}

// Insert adds c under its Type, rejecting a second singleton-type component.
func (r *Registry) Insert(c Component) error {
	if SingletonTypes[c.Type] && len(r.byType[c.Type]) > 0 {
		return vasterr.New(vasterr.AlreadyExists, "component of singleton type "+c.Type+" already registered")
	}
	r.byType[c.Type] = append(r.byType[c.Type], c)
	return nil
}

// Erase removes the component whose Handle equals handle, by value equality
// (Handle is typically a comparable pointer type). It is a no-op if no such
// component is registered.
func (r *Registry) Erase(handle any) {
	for typ, comps := range r.byType {
		for i, c := range comps {
			if c.Handle == handle {
				r.byType[typ] = append(comps[:i:i], comps[i+1:]...)
				if len(r.byType[typ]) == 0 {
					delete(r.byType, typ)
				}
				return
			}
		}
	}
}

// EqualRange returns every component registered under typ, in insertion
// order. The returned slice must not be mutated.
func (r *Registry) EqualRange(typ string) []Component {
	return r.byType[typ]
}

// ByLabel returns a component with the given label across every type, or
// ok=false if none is registered under it. Labels are unique per spec.md
// §3; if several components did share one, the first found is returned
// and which one that is is unspecified.
func (r *Registry) ByLabel(label string) (Component, bool) {
	for _, comps := range r.byType {
		for _, c := range comps {
			if c.Label == label {
				return c, true
			}
		}
	}
	return Component{}, false
}

// All calls fn for every registered component, across every type, in an
// unspecified order.
func (r *Registry) All(fn func(Component) bool) {
	for _, comps := range r.byType {
		for _, c := range comps {
			if !fn(c) {
				return
			}
		}
	}
}

// Count returns the total number of registered components.
func (r *Registry) Count() int {
	n := 0
	for _, comps := range r.byType {
		n += len(comps)
	}
	return n
}
