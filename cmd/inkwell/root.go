package main

import (
	"fmt"
	"os"

	"github.com/aretw0/inkwell/internal/cli"
	"github.com/aretw0/inkwell/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Inkwell is a rich-text formatting core driven by a parallel state machine",
	Long: `Inkwell keeps bold, italic, underline, code, quote, heading and list controls
consistent with a block/run document. Drive it from a prompt, a script or a full-screen editor.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML)")
	rootCmd.PersistentFlags().String("seed", "", "Seed document (YAML or JSON), overrides the config")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every command, transition and action to stderr")
}

// runOptions reads the persistent flags.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	seedPath, _ := cmd.Flags().GetString("seed")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.RunOptions{
		ConfigPath: configPath,
		SeedPath:   seedPath,
		Debug:      debug,
		Input:      cmd.InOrStdin(),
		Output:     cmd.OutOrStdout(),
	}
}
