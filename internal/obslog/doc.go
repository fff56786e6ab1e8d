// Package obslog provides the lazily-initialized structured logger shared
// by the node runtime, grounded on cmd/hiveexplorer/logger's Options/Init
// shape but rekeyed from a CLI tool's per-invocation, date-rotated log
// file to one append-only file per running node, named and placed under
// that node's own base directory. Component loggers obtained through
// Component carry component type and label on every record.
package obslog
