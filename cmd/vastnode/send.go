package main

import "github.com/spf13/cobra"

func init() {
	cmd := &cobra.Command{
		Use:   "send <label> <atom>",
		Short: "Send an atom to a component and await its reply",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd.Context(), "send", nil, args)
		},
	}
	rootCmd.AddCommand(cmd)
}
