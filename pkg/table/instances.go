package table

import "sync/atomic"

// liveInstances is a process-wide counter of constructed-but-not-yet-closed
// slices, grounded on hive/alloc's plain-atomic allocation counters (the
// teacher never reaches for a metrics library in its core packages, so
// table instance accounting stays on sync/atomic here too — see DESIGN.md).
var liveInstances atomic.Int64

// TrackInstance increments the live-instance counter; every layout
// constructor calls it exactly once per returned Slice.
func TrackInstance() { liveInstances.Add(1) }

// UntrackInstance decrements the live-instance counter; every layout's
// Close calls it at most once per Slice, guarded so repeated Close calls
// don't double-decrement.
func UntrackInstance() { liveInstances.Add(-1) }

// Instances returns the number of slices that have been constructed and not
// yet Close'd, for observability (surfaced by internal/node's Status).
func Instances() int64 { return liveInstances.Load() }
