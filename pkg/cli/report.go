package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"
)

// FileReport is the CLI rendering of one validated file.
type FileReport struct {
	Path   string            `json:"path"`
	RunID  string            `json:"runId,omitempty"`
	Result *validator.Result `json:"result"`
}

// Reports is the output of one validate invocation.
type Reports []FileReport

// Valid reports whether every file passed.
func (r Reports) Valid() bool {
	for _, fr := range r {
		if !fr.Result.IsValid {
			return false
		}
	}
	return true
}

// Summary counts invalid files and errors.
func (r Reports) Summary() (invalidFiles, errors int) {
	for _, fr := range r {
		if !fr.Result.IsValid {
			invalidFiles++
		}
		errors += len(fr.Result.Errors)
	}
	return invalidFiles, errors
}

// WriteText renders a header per file followed by its diagnostics in line
// order.
func (fr FileReport) WriteText(w io.Writer) error {
	res := fr.Result
	status := "VALID"
	if !res.IsValid {
		status = "INVALID"
	}
	if _, err := fmt.Fprintf(w, "%s: %s (%s, %s) %d/%d records in %dms\n",
		fr.Path, status,
		plural(len(res.Errors), "error"), plural(len(res.Warnings), "warning"),
		res.ProcessedRecords, res.TotalRecords, res.ProcessingTimeMs); err != nil {
		return err
	}
	for _, d := range res.Diagnostics() {
		if _, err := fmt.Fprintf(w, "  %s\n", d.Error()); err != nil {
			return err
		}
	}
	return nil
}

// WriteText renders every file and a closing summary when there are
// several.
func (r Reports) WriteText(w io.Writer) error {
	for _, fr := range r {
		if err := fr.WriteText(w); err != nil {
			return err
		}
	}
	if len(r) > 1 {
		invalid, errs := r.Summary()
		_, err := fmt.Fprintf(w, "\n%d files, %d invalid, %s\n", len(r), invalid, plural(errs, "error"))
		return err
	}
	return nil
}

// CSVHeader implements CSVWriter.
func (r Reports) CSVHeader() []string {
	return []string{"file", "line", "record_type", "field", "position", "rule", "severity", "category", "message"}
}

// CSVRows implements CSVWriter: one row per diagnostic.
func (r Reports) CSVRows() [][]string {
	var rows [][]string
	for _, fr := range r {
		for _, d := range fr.Result.Diagnostics() {
			rows = append(rows, []string{
				fr.Path,
				strconv.Itoa(d.LineNumber),
				d.RecordType,
				d.FieldName,
				strconv.Itoa(d.FieldPosition),
				d.RuleName,
				string(d.Severity),
				string(d.Category),
				d.Message,
			})
		}
	}
	return rows
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
