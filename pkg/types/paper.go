// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-papers pipeline:
// the Paper record mapped from EFetch XML, the report rows derived from it,
// and the configuration structs for the E-utilities clients and output.
package types

// Paper holds the metadata fetched for one PubMed article.
//
// Authors and Affiliations are parallel: index i of Affiliations belongs to
// index i of Authors. Authors that lack either a name or an affiliation in
// the source record are not present in either list.
type Paper struct {
	// PubmedID is the PMID of the article.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title as returned by EFetch.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the publication year (PubDate/Year), or empty
	// when the record only carries a MedlineDate.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists display names ("ForeName LastName") in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Affiliations lists the first affiliation of each author in Authors.
	Affiliations []string `json:"affiliations" yaml:"affiliations"`
}
