package main

import "github.com/spf13/cobra"

func init() {
	cmd := &cobra.Command{
		Use:   "kill <label>",
		Short: "Shut down a component by label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd.Context(), "kill", nil, args)
		},
	}
	rootCmd.AddCommand(cmd)
}
