package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/cli"
)

var layoutFlags struct {
	format string
}

var layoutCmd = &cobra.Command{
	Use:   "layout [TYPE]",
	Short: "Print the record layouts",
	Long: `Print the field registry used by the validator.

Without arguments, lists every record type with its phase and field count.
With a record type code, prints the fields of that type in position order.

Examples:
  # List record types
  censo layout

  # Fields of the physical person record
  censo layout 30

  # Machine-readable
  censo layout 20 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: printLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVarP(&layoutFlags.format, "format", "f", "text", "output format: text, json, csv")
}

// recordTypeView is one row of the record type listing.
type recordTypeView struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Phase  string `json:"phase"`
	Fields int    `json:"fields"`
}

type recordTypeList []recordTypeView

func (l recordTypeList) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tPHASE\tFIELDS")
	for _, rt := range l {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", rt.Code, rt.Name, rt.Phase, rt.Fields)
	}
	return tw.Flush()
}

func (l recordTypeList) CSVHeader() []string { return []string{"code", "name", "phase", "fields"} }

func (l recordTypeList) CSVRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, rt := range l {
		rows = append(rows, []string{rt.Code, rt.Name, rt.Phase, strconv.Itoa(rt.Fields)})
	}
	return rows
}

// fieldView is one field of a record layout.
type fieldView struct {
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Required    string `json:"required"`
	Length      string `json:"length,omitempty"`
	Type        string `json:"type"`
	Pattern     string `json:"pattern,omitempty"`
	Description string `json:"description,omitempty"`
}

type fieldList []fieldView

func (l fieldList) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tREQUIRED\tLENGTH\tTYPE\tDESCRIPTION")
	for _, f := range l {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", f.Position, f.Name, f.Required, f.Length, f.Type, f.Description)
	}
	return tw.Flush()
}

func (l fieldList) CSVHeader() []string {
	return []string{"position", "name", "required", "length", "type", "pattern", "description"}
}

func (l fieldList) CSVRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, f := range l {
		rows = append(rows, []string{strconv.Itoa(f.Position), f.Name, f.Required, f.Length, f.Type, f.Pattern, f.Description})
	}
	return rows
}

func printLayout(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(layoutFlags.format)
	if err != nil {
		return err
	}
	formatter := cli.NewFormatter(format)

	if len(args) == 0 {
		types := layout.RecordTypes()
		list := make(recordTypeList, 0, len(types))
		for _, rt := range types {
			phase := string(rt.Phase())
			if phase == "" {
				phase = "any"
			}
			list = append(list, recordTypeView{
				Code:   rt.Code(),
				Name:   rt.Name(),
				Phase:  phase,
				Fields: layout.FieldCount(rt),
			})
		}
		return formatter.FormatTo(cmd.OutOrStdout(), list)
	}

	rt, ok := layout.ParseRecordType(args[0])
	if !ok {
		return cli.NewCommandError("layout", fmt.Errorf("unknown record type %q", args[0]))
	}
	return formatter.FormatTo(cmd.OutOrStdout(), describeFields(layout.FieldsFor(rt)))
}

func describeFields(rules []layout.FieldRule) fieldList {
	list := make(fieldList, 0, len(rules))
	for _, r := range rules {
		view := fieldView{
			Position:    r.Position,
			Name:        r.Name,
			Required:    requirement(r),
			Length:      lengthBounds(r),
			Type:        r.Type.String(),
			Description: r.Description,
		}
		if r.Pattern != nil {
			view.Pattern = r.Pattern.String()
		}
		list = append(list, view)
	}
	return list
}

func requirement(r layout.FieldRule) string {
	switch {
	case r.Required:
		return "yes"
	case r.When != nil:
		return "when " + r.When.String()
	default:
		return "no"
	}
}

func lengthBounds(r layout.FieldRule) string {
	switch {
	case r.ExactLength > 0:
		return strconv.Itoa(r.ExactLength)
	case r.MinLength > 0 && r.MaxLength > 0:
		return fmt.Sprintf("%d-%d", r.MinLength, r.MaxLength)
	case r.MaxLength > 0:
		return "<=" + strconv.Itoa(r.MaxLength)
	case r.MinLength > 0:
		return ">=" + strconv.Itoa(r.MinLength)
	default:
		return ""
	}
}

