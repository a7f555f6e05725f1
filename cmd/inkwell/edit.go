package main

import (
	"github.com/aretw0/inkwell/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the full-screen editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Metrics, _ = cmd.Flags().GetBool("metrics")
		return cli.RunEdit(opts)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().Bool("metrics", false, "Print command and transition metrics on exit")
}
