// Package registry implements the node's component registry: a multimap
// from component type to (handle, label), with singleton enforcement for
// the component types that may have at most one instance per node.
package registry
