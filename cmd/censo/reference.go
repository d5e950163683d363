package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/oyurisousa/validador-censo-sub000/pkg/cli"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

var referenceFlags struct {
	file   string
	format string
}

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Manage reference tables",
	Long: `Manage the reference tables (municipalities, knowledge areas, teaching
stages, complementary activities) that coded fields are checked against.

Tables live in the SQLite database named by reference.sqlite_path. Set
reference.backend to "sqlite" for the validator to use them.`,
}

var referenceImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a YAML seed file into the SQLite store",
	Long: `Import reference codes from a YAML file. Each table named in the file
replaces the stored table of the same name; other tables are untouched.

Without --file the seed is read from the Git repository configured under
reference.git (repository, branch, path).

File format:
  version: "2025"
  tables:
    municipality: ["3550308", "3304557"]
    complementary_activity: ["11002", "13301"]

Examples:
  censo reference import --file tables.yaml

  # From the configured repository
  CENSO_REFERENCE_GIT_REPOSITORY=https://git.example.org/censo/tabelas.git \
    censo reference import`,
	RunE: importReference,
}

var referenceTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables in the SQLite store",
	RunE:  listReferenceTables,
}

func init() {
	rootCmd.AddCommand(referenceCmd)
	referenceCmd.AddCommand(referenceImportCmd)
	referenceCmd.AddCommand(referenceTablesCmd)

	referenceImportCmd.Flags().StringVar(&referenceFlags.file, "file", "", "seed file (uses reference.git when not specified)")
	referenceTablesCmd.Flags().StringVarP(&referenceFlags.format, "format", "f", "text", "output format: text, json, csv")
}

func importReference(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	seed, origin, err := a.loadSeed(cmd.Context(), referenceFlags.file)
	if err != nil {
		return cli.NewCommandError("reference import", err)
	}
	store, err := a.referenceStore()
	if err != nil {
		return cli.NewCommandError("reference import", err)
	}

	counts, err := seed.Apply(cmd.Context(), store)
	if err != nil {
		return cli.NewCommandError("reference import", err)
	}
	for _, table := range reference.Tables() {
		if n, ok := counts[table]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d codes\n", table, n)
		}
	}
	a.logger.Info("reference tables imported", "source", origin, "db", store.Path(), "tables", len(counts))
	return nil
}

type tableRow struct {
	Table      string    `json:"table"`
	Count      int       `json:"count"`
	ImportedAt time.Time `json:"importedAt"`
}

type tableList []tableRow

func (l tableList) WriteText(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "no reference tables imported")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tCODES\tIMPORTED")
	for _, t := range l {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Table, t.Count, t.ImportedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func (l tableList) CSVHeader() []string { return []string{"table", "count", "imported_at"} }

func (l tableList) CSVRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, t := range l {
		rows = append(rows, []string{t.Table, strconv.Itoa(t.Count), t.ImportedAt.Format(time.RFC3339)})
	}
	return rows
}

func listReferenceTables(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(referenceFlags.format)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.referenceStore()
	if err != nil {
		return cli.NewCommandError("reference tables", err)
	}
	infos, err := store.Tables(cmd.Context())
	if err != nil {
		return cli.NewCommandError("reference tables", err)
	}

	rows := make(tableList, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, tableRow{Table: info.Table.String(), Count: info.Count, ImportedAt: info.ImportedAt})
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), rows)
}
