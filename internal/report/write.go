// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nao1215/markdown"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Write renders rep to w in the given format.
func Write(w io.Writer, rep types.Report, format types.OutputFormat) error {
	switch format {
	case types.FormatTable, "":
		return FormatTable(rep, w)
	case types.FormatCSV:
		return FormatCSV(rep, w)
	case types.FormatJSON:
		return FormatJSON(rep, w)
	case types.FormatYAML:
		return FormatYAML(rep, w)
	case types.FormatMarkdown:
		return FormatMarkdown(rep, w)
	default:
		return fmt.Errorf("unsupported output format %q: use table, csv, json, yaml or markdown", format)
	}
}

// WriteFile renders rep into the file at path, creating or truncating it.
func WriteFile(path string, rep types.Report, format types.OutputFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, rep, format); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// ParseFormat validates a user-supplied format name. An empty name is
// returned unchanged so the caller can pick a default.
func ParseFormat(name string) (types.OutputFormat, error) {
	f := types.OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case "", types.FormatTable, types.FormatCSV, types.FormatJSON, types.FormatYAML, types.FormatMarkdown:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q: use table, csv, json, yaml or markdown", name)
}

// FormatCSV writes a header row followed by one record per report row.
func FormatCSV(rep types.Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.ReportColumns); err != nil {
		return err
	}
	for _, r := range rep.Rows {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatJSON writes the rows as an indented JSON array. An empty report
// is written as [].
func FormatJSON(rep types.Report, w io.Writer) error {
	rows := rep.Rows
	if rows == nil {
		rows = []types.ReportRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// FormatYAML writes the rows as a YAML sequence.
func FormatYAML(rep types.Report, w io.Writer) error {
	rows := rep.Rows
	if rows == nil {
		rows = []types.ReportRow{}
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(rows); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// FormatMarkdown writes the report as a GitHub-flavored Markdown table.
func FormatMarkdown(rep types.Report, w io.Writer) error {
	rows := make([][]string, len(rep.Rows))
	for i, r := range rep.Rows {
		vals := r.Values()
		for j := range vals {
			vals[j] = strings.ReplaceAll(vals[j], "|", `\|`)
		}
		rows[i] = vals
	}

	md := markdown.NewMarkdown(w)
	md.H1("Non-academic authors")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: types.ReportColumns,
		Rows:   rows,
	})
	return md.Build()
}

// FormatTable writes the report as a human-readable table to w. Column
// widths follow the widest cell, so no value is cut. The header is written
// even when there are no rows.
func FormatTable(rep types.Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rule := make([]string, len(types.ReportColumns))
	for i, col := range types.ReportColumns {
		rule[i] = strings.Repeat("-", len(col))
	}
	writeTableLine(tw, types.ReportColumns)
	writeTableLine(tw, rule)
	for _, r := range rep.Rows {
		writeTableLine(tw, r.Values())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d papers\n", len(rep.Rows))
	return err
}

// cellReplacer keeps a cell on one line and inside its column.
var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func writeTableLine(w io.Writer, cells []string) {
	clean := make([]string, len(cells))
	for i, c := range cells {
		clean[i] = cellReplacer.Replace(c)
	}
	fmt.Fprintln(w, strings.Join(clean, "\t"))
}
