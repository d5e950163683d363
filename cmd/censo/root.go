package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oyurisousa/validador-censo-sub000/pkg/cli"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "censo",
	Short: "Censo - Educacenso migration file validator",
	Long: `Censo validates school census migration files (Educacenso) record by record
and across records, and reports every problem it finds with its line, field
and rule.

It can be used:
  - as a one-shot checker (censo validate)
  - as a drop-folder service writing JSON reports (censo watch)

Configuration is read from --config (YAML) and CENSO_* environment variables.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode()
	}
	return cli.ExitFailure
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
