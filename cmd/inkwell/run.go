package main

import (
	"os"

	"github.com/aretw0/inkwell/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Drive the editor from a prompt or a script",
	Long: `Reads one instruction per line: commands (TOGGLE_BOLD), hotkeys (mod+b),
selections (select 0.1:3 0.1:7, select block 2, find text), insert <text>, show, html and state.
With a script argument, or when stdin is not a terminal, no prompt is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.Metrics, _ = cmd.Flags().GetBool("metrics")

		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			opts.Input = f
			opts.Headless = true
		}
		return cli.Execute(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "No banner, prompt or terminal rendering")
	runCmd.Flags().Bool("metrics", false, "Print command and transition metrics on exit")
}
