package obslog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// L is the global logger, discarding everything until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures logger initialization around one running node rather
// than around a single CLI invocation: log placement and naming follow the
// node's own base directory and name instead of a user-home default, since
// a node is a long-lived process that owns its directory for the whole of
// its life (spec.md §6), not a short-lived command that needs its output
// swept up after the fact.
type Options struct {
	Enabled bool       // If false, all logging is discarded.
	BaseDir string     // Node's base directory; logs live under BaseDir/log.
	Name    string     // Node name; becomes the log file's base name.
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled.
}

// Init configures L. Call once from a node's entry point, after its base
// directory has been created, before any component starts logging.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logDir := filepath.Join(opts.BaseDir, "log")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name = "node"
	}
	filename := filepath.Join(logDir, name+".log")

	// Append across restarts of the same node: a node's log is a single
	// running record of that node's life, not a rotated daily batch, so
	// there is no retention sweep to run here.
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}).WithAttrs([]slog.Attr{
		slog.String("node", name),
	}))
	return nil
}

// Component returns a logger scoped to one component, carrying its type
// and label on every record it emits so a multi-component node's log can
// be filtered down to a single spawned instance.
func Component(typ, label string) *slog.Logger {
	return L.With("component_type", typ, "component_label", label)
}

// Debug logs at debug level with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warn level with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
