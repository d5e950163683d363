/*
Package cli provides command-line interface utilities for the censo command.

Output Formatting:

Validation reports render as text, JSON or CSV:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, reports); err != nil {
		return err
	}

Values implementing TextWriter or CSVWriter control their own rendering.

Progress Reporting:

Validating many files reports progress on stderr:

	progress := cli.NewProgressReporter(os.Stderr, "files")
	progress.Start(int64(len(paths)))
	progress.Update(1)
	progress.Finish()

Exit Codes:

A CommandError carries the exit code: ExitInvalid when an input failed
validation, ExitFailure for anything else.
*/
package cli
