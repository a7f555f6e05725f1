package main

import (
	"github.com/aretw0/inkwell/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the format machine as a Mermaid state diagram",
	Long:  `Prints a stateDiagram-v2 with one concurrent state per region, highlighting the values derived from the seed document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
