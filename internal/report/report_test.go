// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

func samplePapers() []types.Paper {
	return []types.Paper{
		{
			PubmedID:        "39000001",
			Title:           "Antibody engineering for oncology.",
			PublicationDate: "2024",
			Authors:         []string{"John Doe", "Jane Smith", "Ann Lee"},
			Affiliations: []string{
				"Dept. of Biology, Stanford University",
				"Genentech Inc",
				"Pfizer Ltd., New York",
			},
		},
		{
			PubmedID:        "39000002",
			Title:           "Purely academic work.",
			PublicationDate: "2023",
			Authors:         []string{"Kim Park"},
			Affiliations:    []string{"Harvard Medical School"},
		},
		{
			PubmedID: "39000003",
			Title:    "No usable authors.",
		},
	}
}

// --- Build ---

func TestBuildKeepsOnlyNonAcademicAuthors(t *testing.T) {
	rep := Build(samplePapers())
	require.Equal(t, 3, rep.Len())

	row := rep.Rows[0]
	assert.Equal(t, "39000001", row.PubmedID)
	assert.Equal(t, "2024", row.PublicationDate)
	assert.Equal(t, "Jane Smith; Ann Lee", row.NonAcademicAuthors)
	assert.Equal(t, "Genentech Inc; Pfizer Ltd., New York", row.CompanyAffiliations)
}

func TestBuildKeepsRowsWithoutNonAcademicAuthors(t *testing.T) {
	rep := Build(samplePapers())

	for _, row := range rep.Rows[1:] {
		assert.Empty(t, row.NonAcademicAuthors, row.PubmedID)
		assert.Empty(t, row.CompanyAffiliations, row.PubmedID)
	}
	assert.Equal(t, "39000003", rep.Rows[2].PubmedID)
}

func TestBuildPreservesOrderAndCount(t *testing.T) {
	papers := samplePapers()
	rep := Build(papers)

	require.Len(t, rep.Rows, len(papers))
	for i, p := range papers {
		assert.Equal(t, p.PubmedID, rep.Rows[i].PubmedID)
	}
}

func TestBuildJoinedListsHaveEqualLength(t *testing.T) {
	for _, row := range Build(samplePapers()).Rows {
		if row.NonAcademicAuthors == "" {
			assert.Empty(t, row.CompanyAffiliations)
			continue
		}
		authors := strings.Split(row.NonAcademicAuthors, Separator)
		affs := strings.Split(row.CompanyAffiliations, Separator)
		assert.Equal(t, len(authors), len(affs), row.PubmedID)
	}
}

func TestBuildMixedPaper(t *testing.T) {
	rep := Build([]types.Paper{{
		PubmedID:     "1",
		Authors:      []string{"Academic Person", "Industry Person"},
		Affiliations: []string{"Stanford University", "Genentech Inc"},
	}})

	assert.Equal(t, "Industry Person", rep.Rows[0].NonAcademicAuthors)
	assert.Equal(t, "Genentech Inc", rep.Rows[0].CompanyAffiliations)
}

func TestBuildEmpty(t *testing.T) {
	rep := Build(nil)
	assert.True(t, rep.IsEmpty())
}

// --- Formats ---

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSV(Build(samplePapers()), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, types.ReportColumns, records[0])
	assert.Equal(t, []string{
		"39000001", "Antibody engineering for oncology.", "2024",
		"Jane Smith; Ann Lee", "Genentech Inc; Pfizer Ltd., New York",
	}, records[1])
	assert.Equal(t, []string{"39000003", "No usable authors.", "", "", ""}, records[3])
}

func TestFormatCSVEmptyReportHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSV(types.Report{}, &buf))

	assert.Equal(t, "PubmedID,Title,Publication Date,Non-academic Author(s),Company Affiliation(s)\n", buf.String())
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatTable(Build(samplePapers()), &buf))
	out := buf.String()

	for _, col := range types.ReportColumns {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "39000001")
	assert.Contains(t, out, "Genentech Inc; Pfizer Ltd., New York")
	assert.Contains(t, out, "3 papers")
}

func TestFormatTableEmptyReportHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatTable(types.Report{}, &buf))

	assert.Contains(t, buf.String(), types.ColumnNonAcademicAuthors)
	assert.Contains(t, buf.String(), "0 papers")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(Build(samplePapers()), &buf))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Jane Smith; Ann Lee", rows[0]["Non-academic Author(s)"])

	buf.Reset()
	require.NoError(t, FormatJSON(types.Report{}, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(Build(samplePapers()), &buf))

	var rows []types.ReportRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Genentech Inc; Pfizer Ltd., New York", rows[0].CompanyAffiliations)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatYAMLReportsWriteError(t *testing.T) {
	err := FormatYAML(Build(samplePapers()), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatMarkdown(Build(samplePapers()), &buf))
	out := buf.String()

	assert.Contains(t, out, "# Non-academic authors")
	assert.Contains(t, out, "PubmedID")
	assert.Contains(t, out, "39000002")
}

func TestWriteUnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, types.Report{}, "xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(path, Build(samplePapers()), types.FormatCSV))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PubmedID,Title,"))
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), types.Report{}, types.FormatCSV)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{"", "", false},
		{"csv", types.FormatCSV, false},
		{" JSON ", types.FormatJSON, false},
		{"markdown", types.FormatMarkdown, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTableKeepsLongCells(t *testing.T) {
	title := "A deliberately long title about antibody-drug conjugates in solid tumours that exceeds any fixed column"
	rep := Build([]types.Paper{{
		PubmedID:     "39000010",
		Title:        title,
		Authors:      []string{"Alexandra Montgomery-Smith", "Benjamin Worthington"},
		Affiliations: []string{"Genentech Inc, South San Francisco", "AstraZeneca, Cambridge"},
	}})

	var buf bytes.Buffer
	require.NoError(t, FormatTable(rep, &buf))
	out := buf.String()

	assert.Contains(t, out, title)
	assert.Contains(t, out, "Alexandra Montgomery-Smith; Benjamin Worthington")
	assert.Contains(t, out, "Genentech Inc, South San Francisco; AstraZeneca, Cambridge")
	assert.NotContains(t, out, "...")
}

func TestFormatTableAlignsColumns(t *testing.T) {
	rep := types.Report{Rows: []types.ReportRow{
		{PubmedID: "1", Title: "Short", NonAcademicAuthors: "A"},
		{PubmedID: "22", Title: "A much longer title", NonAcademicAuthors: "B"},
	}}

	var buf bytes.Buffer
	require.NoError(t, FormatTable(rep, &buf))
	lines := strings.Split(buf.String(), "\n")

	// The authors column starts at the same offset on every row.
	col := strings.Index(lines[0], types.ColumnNonAcademicAuthors)
	require.Positive(t, col)
	assert.Equal(t, "A", string(lines[2][col]))
	assert.Equal(t, "B", string(lines[3][col]))
}

// Affiliations that themselves contain the separator split into more parts
// than there are authors; the joined cell keeps them verbatim.
func TestBuildAffiliationContainingSeparator(t *testing.T) {
	rep := Build([]types.Paper{{
		PubmedID:     "5",
		Authors:      []string{"Jane Smith"},
		Affiliations: []string{"Genentech Inc; South San Francisco, CA"},
	}})

	row := rep.Rows[0]
	assert.Equal(t, "Jane Smith", row.NonAcademicAuthors)
	assert.Equal(t, "Genentech Inc; South San Francisco, CA", row.CompanyAffiliations)
	assert.Len(t, strings.Split(row.NonAcademicAuthors, Separator), 1)
	assert.Len(t, strings.Split(row.CompanyAffiliations, Separator), 2)
}
