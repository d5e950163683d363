package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/oyurisousa/validador-censo-sub000/pkg/cli"
	"github.com/oyurisousa/validador-censo-sub000/pkg/history"
)

var historyFlags struct {
	file    string
	sha256  string
	since   time.Duration
	invalid bool
	limit   int
	format  string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and prune recorded validation runs",
	Long: `Runs are recorded by "censo validate --record" and by "censo watch" when
history.enabled is set. Each run keeps the file name, checksum, verdict and
how many times each rule fired; diagnostics themselves are not stored.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Long: `List recorded runs, newest first.

Examples:
  # Last 100 runs
  censo history list

  # Invalid runs of one file in the last week
  censo history list --file escola.txt --invalid --since 168h`,
	RunE: listHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than history.retention_days",
	RunE:  pruneHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyListCmd.Flags().StringVar(&historyFlags.file, "file", "", "filter by file name")
	historyListCmd.Flags().StringVar(&historyFlags.sha256, "sha256", "", "filter by file checksum")
	historyListCmd.Flags().DurationVar(&historyFlags.since, "since", 0, "only runs newer than this (e.g. 24h)")
	historyListCmd.Flags().BoolVar(&historyFlags.invalid, "invalid", false, "only invalid runs")
	historyListCmd.Flags().IntVar(&historyFlags.limit, "limit", 100, "maximum number of runs")
	historyListCmd.Flags().StringVarP(&historyFlags.format, "format", "f", "text", "output format: text, json, csv")
}

type runList []*history.Run

func (l runList) WriteText(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VALIDATED\tFILE\tRESULT\tERRORS\tWARNINGS\tTOP RULES\tID")
	for _, r := range l {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ValidatedAt.Format(time.RFC3339), r.FileName, verdict(r.Valid),
			r.Errors, r.Warnings, strings.Join(r.TopRules(3), ","), r.ID)
	}
	return tw.Flush()
}

func (l runList) CSVHeader() []string {
	return []string{"id", "validated_at", "file", "sha256", "schema_version", "valid", "errors", "warnings", "records", "duration_ms"}
}

func (l runList) CSVRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		rows = append(rows, []string{
			r.ID,
			r.ValidatedAt.Format(time.RFC3339),
			r.FileName,
			r.SHA256,
			r.SchemaVersion,
			strconv.FormatBool(r.Valid),
			strconv.Itoa(r.Errors),
			strconv.Itoa(r.Warnings),
			strconv.Itoa(r.TotalRecords),
			strconv.FormatInt(r.DurationMs, 10),
		})
	}
	return rows
}

func verdict(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

func listHistory(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(historyFlags.format)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.historyStore()
	if err != nil {
		return cli.NewCommandError("history list", err)
	}

	q := history.Query{
		FileName: historyFlags.file,
		SHA256:   historyFlags.sha256,
		Limit:    historyFlags.limit,
	}
	if historyFlags.since > 0 {
		q.Since = time.Now().Add(-historyFlags.since)
	}
	if historyFlags.invalid {
		valid := false
		q.Valid = &valid
	}

	runs, err := store.List(cmd.Context(), q)
	if err != nil {
		return cli.NewCommandError("history list", err)
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), runList(runs))
}

func pruneHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.historyStore()
	if err != nil {
		return cli.NewCommandError("history prune", err)
	}

	pruner := a.pruner(store)
	cutoff, ok := pruner.Cutoff()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "retention is unlimited (history.retention_days = 0), nothing to prune")
		return nil
	}
	deleted, err := pruner.Prune(cmd.Context())
	if err != nil {
		return cli.NewCommandError("history prune", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ pruned %d runs validated before %s\n", deleted, cutoff.Format(time.RFC3339))
	return nil
}
