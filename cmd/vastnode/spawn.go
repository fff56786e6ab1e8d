package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var spawnLabel string

func init() {
	cmd := &cobra.Command{
		Use:   "spawn <type> [args...]",
		Short: "Spawn a component",
		Long: `spawn starts a new component of the given type under this node,
e.g. "vastnode spawn source zeek", "vastnode spawn archive",
"vastnode spawn exporter".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := map[string]string{}
			if spawnLabel != "" {
				opts["spawn.label"] = spawnLabel
			}
			full := "spawn " + strings.Join(args, " ")
			return runAndPrint(cmd.Context(), full, opts, args[1:])
		},
	}
	cmd.Flags().StringVar(&spawnLabel, "label", "", "explicit component label")
	rootCmd.AddCommand(cmd)
}
