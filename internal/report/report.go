// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report turns fetched papers into the non-academic author report
// and writes it in the supported output formats.
package report

import (
	"strings"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Separator joins multiple authors or affiliations within one cell.
const Separator = "; "

// Build returns one row per paper, in input order. Each row keeps only the
// authors whose affiliation is non-academic; a paper without such authors
// still gets a row with empty author and affiliation cells.
func Build(papers []types.Paper) types.Report {
	rows := make([]types.ReportRow, 0, len(papers))
	for _, p := range papers {
		rows = append(rows, buildRow(p))
	}
	return types.Report{Rows: rows}
}

func buildRow(p types.Paper) types.ReportRow {
	var authors, affiliations []string
	// Authors and Affiliations are parallel; a longer list is cut to the
	// shorter one.
	n := min(len(p.Authors), len(p.Affiliations))
	for i := 0; i < n; i++ {
		if classify.IsNonAcademic(p.Affiliations[i]) {
			authors = append(authors, p.Authors[i])
			affiliations = append(affiliations, p.Affiliations[i])
		}
	}
	return types.ReportRow{
		PubmedID:            p.PubmedID,
		Title:               p.Title,
		PublicationDate:     p.PublicationDate,
		NonAcademicAuthors:  strings.Join(authors, Separator),
		CompanyAffiliations: strings.Join(affiliations, Separator),
	}
}
