// Package node implements the node supervisor: factory-driven component
// spawning, auto-wiring, status fan-out, and the ordered sequential
// shutdown of spec.md §4.7, on top of a minimal message-driven task runtime
// (mailbox.go) grounded on hive/tx.Manager's pending-request/timeout
// bookkeeping.
package node
