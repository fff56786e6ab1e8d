// Package fsdurable fsyncs a node's base directory and its component
// subdirectories on shutdown, grounded on hive/dirty's per-OS flush family
// (flush_unix.go, flush_darwin.go, flush_windows.go) and adapted from
// "flush dirty mmap'd hive pages" to "make sure everything a component
// wrote under the node's base directory actually reached disk".
package fsdurable
