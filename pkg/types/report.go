// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Report column headers, in output order.
const (
	ColumnPubmedID            = "PubmedID"
	ColumnTitle               = "Title"
	ColumnPublicationDate     = "Publication Date"
	ColumnNonAcademicAuthors  = "Non-academic Author(s)"
	ColumnCompanyAffiliations = "Company Affiliation(s)"
)

// ReportColumns is the fixed column order of every report format.
var ReportColumns = []string{
	ColumnPubmedID,
	ColumnTitle,
	ColumnPublicationDate,
	ColumnNonAcademicAuthors,
	ColumnCompanyAffiliations,
}

// ReportRow is one paper reduced to its non-academic authors.
// NonAcademicAuthors and CompanyAffiliations are "; "-joined lists of equal
// length; both are empty when the paper has no non-academic author.
type ReportRow struct {
	PubmedID            string `json:"PubmedID" yaml:"PubmedID"`
	Title               string `json:"Title" yaml:"Title"`
	PublicationDate     string `json:"Publication Date" yaml:"Publication Date"`
	NonAcademicAuthors  string `json:"Non-academic Author(s)" yaml:"Non-academic Author(s)"`
	CompanyAffiliations string `json:"Company Affiliation(s)" yaml:"Company Affiliation(s)"`
}

// Values returns the row's cells in ReportColumns order.
func (r ReportRow) Values() []string {
	return []string{r.PubmedID, r.Title, r.PublicationDate, r.NonAcademicAuthors, r.CompanyAffiliations}
}

// Report is the tabular result of one pipeline run. Rows keep the order of
// the papers they were built from.
type Report struct {
	Rows []ReportRow `json:"rows" yaml:"rows"`
}

// Len returns the number of rows.
func (r Report) Len() int { return len(r.Rows) }

// IsEmpty reports whether the report has no rows.
func (r Report) IsEmpty() bool { return len(r.Rows) == 0 }
