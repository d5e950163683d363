package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/cli"
	"github.com/oyurisousa/validador-censo-sub000/pkg/history"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/logging"
)

var validateFlags struct {
	format        string
	schemaVersion string
	strict        bool
	record        bool
	progress      bool
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate Educacenso migration files",
	Long: `Validate one or more migration files and print every diagnostic.

Each file is checked for structure (separators, record order, the closing 99
record), then field by field against the layout of its record type, then
record by record against the business rules, and finally across records
(classes, persons and bonds must refer to each other consistently).

A file is valid when it has no error-severity diagnostic. The command exits
with status 1 when any file is invalid, or has warnings under --strict, and
with status 2 when a file cannot be read. Use "-" to read standard input.

Examples:
  # Validate a file
  censo validate escola.txt

  # JSON report for several files
  censo validate --format json *.txt

  # One CSV row per diagnostic
  censo validate --format csv escola.txt > diagnostics.csv

  # Validate against the 2024 layout and record the run
  censo validate --schema-version 2024 --record escola.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateFiles,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.format, "format", "f", "text", "output format: text, json, csv")
	validateCmd.Flags().StringVar(&validateFlags.schemaVersion, "schema-version", "", "layout year (uses config if not specified)")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "treat warnings as failures")
	validateCmd.Flags().BoolVar(&validateFlags.record, "record", false, "record the runs in the history database")
	validateCmd.Flags().BoolVar(&validateFlags.progress, "progress", false, "show progress on stderr")
}

func validateFiles(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(validateFlags.format)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	version := a.schemaVersion(validateFlags.schemaVersion)
	if _, err := layout.ParseSchemaVersion(version); err != nil {
		return cli.NewConfigError("schema-version", err.Error())
	}
	strict := validateFlags.strict || a.cfg.Validation.Strict

	ctx := cmd.Context()
	v, err := a.validator(ctx)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	var store history.Store
	if validateFlags.record || a.cfg.History.Enabled {
		if store, err = a.historyStore(); err != nil {
			return cli.NewCommandError("validate", err)
		}
	}

	var progress cli.ProgressReporter
	if validateFlags.progress {
		progress = cli.NewProgressReporter(cmd.ErrOrStderr(), "files")
		progress.Start(int64(len(args)))
	}

	reports := make(cli.Reports, 0, len(args))
	for i, path := range args {
		content, name, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			if progress != nil {
				progress.Error(err)
			}
			return cli.NewCommandError("validate", err)
		}

		fileCtx := logging.WithSchemaVersion(logging.WithFileName(ctx, name), version)
		res := v.ValidateFile(fileCtx, content, name, version)
		report := cli.FileReport{Path: path, Result: res}

		if store != nil {
			run := history.NewRun(res, time.Now())
			if err := store.Record(logging.WithRunID(fileCtx, run.ID), run); err != nil {
				return cli.NewCommandError("validate", err)
			}
			report.RunID = run.ID
		}
		reports = append(reports, report)

		if progress != nil {
			progress.Update(int64(i + 1))
		}
	}
	if progress != nil {
		progress.Finish()
	}

	if err := cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), reports); err != nil {
		return cli.NewCommandError("validate", err)
	}

	invalid, errs := reports.Summary()
	if invalid > 0 {
		return cli.NewInvalidError("validate", fmt.Errorf("%d of %d files invalid (%d errors)", invalid, len(reports), errs))
	}
	if strict {
		if warned := countWarned(reports); warned > 0 {
			return cli.NewInvalidError("validate", fmt.Errorf("%d of %d files have warnings (strict mode)", warned, len(reports)))
		}
	}
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, string, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read standard input: %w", err)
		}
		return content, "stdin", nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return content, filepath.Base(path), nil
}

func countWarned(reports cli.Reports) int {
	n := 0
	for _, r := range reports {
		if len(r.Result.Warnings) > 0 {
			n++
		}
	}
	return n
}
