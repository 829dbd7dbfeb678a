package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tablefile/pkg/table"
	"github.com/leapstack-labs/tablefile/pkg/tablefile"
)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Print the first rows of a CSV or JSON table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())

			opts, err := cfg.CSVOptions()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Output
			}

			path := args[0]
			var tab *table.Table
			switch strings.ToLower(filepath.Ext(path)) {
			case ".csv":
				tab, err = tablefile.ReadFileSync(path).ParseCSV(opts)
			case ".json":
				tab, err = tablefile.ReadFileSync(path).ParseJSON()
			default:
				return fmt.Errorf("unsupported input %s: expected a .csv or .json file", path)
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			return renderPreview(cmd.OutOrStdout(), tab, limit, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of rows to show")
	cmd.Flags().StringVar(&format, "format", "", "output format: table, csv, json or md")

	return cmd
}

func renderPreview(w io.Writer, tab *table.Table, limit int, format string) error {
	total := tab.Len()
	rows := tab.Rows()
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	switch format {
	case "json":
		return renderJSON(w, tab.Columns(), rows)
	case "csv":
		return renderCSV(w, tab.Columns(), rows)
	case "md", "markdown":
		return renderMarkdown(w, tab.Columns(), rows)
	default:
		return renderTable(w, tab.Columns(), rows, total)
	}
}

func renderTable(w io.Writer, cols []string, rows []table.Row, total int) error {
	if total == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := prettytable.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(prettytable.StyleLight)

	headerRow := make(prettytable.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		r := make(prettytable.Row, len(cols))
		for i, col := range cols {
			r[i] = formatCell(row[col])
		}
		t.AppendRow(r)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", len(rows), total)
	return nil
}

func renderCSV(w io.Writer, cols []string, rows []table.Row) error {
	sub := table.New(cols...)
	sub.Append(rows...)
	text, err := sub.FormatCSV(nil)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func renderJSON(w io.Writer, cols []string, rows []table.Row) error {
	sub := table.New(cols...)
	sub.Append(rows...)
	text, err := sub.FormatJSON()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func renderMarkdown(w io.Writer, cols []string, rows []table.Row) error {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))

	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, row := range rows {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = formatCell(row[col])
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func formatCell(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
