package main

import (
	"github.com/aretw0/inkwell/internal/cli"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Print the transition table and the current region values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.States(runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
