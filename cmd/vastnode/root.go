package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vastcore/vast/internal/node"
	"github.com/vastcore/vast/internal/obslog"
)

var (
	baseDir    string
	nodeName   string
	logEnabled bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "vastnode",
	Short: "Run and drive a VAST node",
	Long: `vastnode hosts a node's component registry and exposes its
spawn/kill/status/send command surface from the command line, one
invocation per command.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "./vast-node", "node base directory")
	rootCmd.PersistentFlags().StringVar(&nodeName, "name", "vast-node", "node name")
	rootCmd.PersistentFlags().BoolVar(&logEnabled, "log", false, "write a structured log to <base-dir>/log/<name>.log")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openNode initializes logging and constructs the node this process
// drives for the lifetime of a single command invocation.
func openNode() (*node.Node, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if err := obslog.Init(obslog.Options{Enabled: logEnabled, BaseDir: baseDir, Name: nodeName, Level: level}); err != nil {
		return nil, err
	}
	return node.New(nodeName, baseDir)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runAndPrint(ctx context.Context, full string, opts map[string]string, args []string) error {
	n, err := openNode()
	if err != nil {
		return err
	}
	result, err := n.HandleCommand(ctx, full, opts, args)
	if err != nil {
		return err
	}
	return printJSON(result)
}
