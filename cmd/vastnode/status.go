package main

import "github.com/spf13/cobra"

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report node and component status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd.Context(), "status", nil, nil)
		},
	}
	rootCmd.AddCommand(cmd)
}
