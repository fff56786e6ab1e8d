// Package valueindex implements the per-kind value indices a table slice
// feeds cell data into. An Index is a polymorphic, append-only structure
// that ingests (view, row id) pairs and supports predicate lookup; the
// concrete variant is chosen by the owning field's vtype.Kind, dispatched by
// pkg/table (see NewIndexFor and DispatchAppend there) rather than
// constructed here.
package valueindex
