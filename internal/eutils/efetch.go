// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// FetchURL builds the EFetch request URL for a history token. batchSize <= 0
// uses the client's configured batch size.
func (c *Client) FetchURL(queryKey, webEnv string, batchSize int) string {
	if batchSize <= 0 {
		batchSize = c.cfg.BatchSize
	}
	params := Params{}.
		Add("db", database).
		Add("query_key", url.QueryEscape(queryKey)).
		Add("WebEnv", url.QueryEscape(webEnv)).
		Add("retmax", strconv.Itoa(batchSize)).
		Add("retmode", "xml")
	return BuildURL(c.cfg.FetchURL, c.identify(params))
}

// Fetch retrieves up to batchSize records from the server-side result set
// named by queryKey and webEnv, and maps each PubmedArticle to a Paper.
func (c *Client) Fetch(ctx context.Context, queryKey, webEnv string, batchSize int) ([]types.Paper, error) {
	var set pubmedArticleSet
	if err := httputil.GetXML(ctx, c.HTTP, c.FetchURL(queryKey, webEnv, batchSize), c.cfg.UserAgent, &set); err != nil {
		return nil, fmt.Errorf("efetch: %w", err)
	}

	papers := make([]types.Paper, 0, len(set.Articles))
	for _, a := range set.Articles {
		papers = append(papers, a.toPaper())
	}
	return papers, nil
}

// PubMed EFetch XML structures, reduced to the fields the report needs.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string         `xml:"MedlineCitation>PMID"`
	Article medlineArticle `xml:"MedlineCitation>Article"`
}

type medlineArticle struct {
	Title   markupText     `xml:"ArticleTitle"`
	PubYear string         `xml:"Journal>JournalIssue>PubDate>Year"`
	Authors []pubmedAuthor `xml:"AuthorList>Author"`
}

type pubmedAuthor struct {
	ForeName string `xml:"ForeName"`
	LastName string `xml:"LastName"`

	// Affiliation appears directly under Author in records older than the
	// 2015 DTD; newer records nest it in AffiliationInfo.
	Affiliation     markupText        `xml:"Affiliation"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation markupText `xml:"Affiliation"`
}

// markupText is element text including the text of nested inline markup
// such as <i>, <sup> and <sub>, with the tags themselves dropped.
type markupText string

func (m *markupText) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	var b strings.Builder
	for depth := 0; ; {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*m = markupText(b.String())
				return nil
			}
			depth--
		}
	}
}

// displayName returns "ForeName LastName" with surrounding space trimmed.
func (a pubmedAuthor) displayName() string {
	return strings.TrimSpace(a.ForeName + " " + a.LastName)
}

// firstAffiliation returns the first affiliation recorded for the author.
func (a pubmedAuthor) firstAffiliation() string {
	if len(a.AffiliationInfo) > 0 {
		return string(a.AffiliationInfo[0].Affiliation)
	}
	return string(a.Affiliation)
}

// toPaper maps the article, keeping only authors with both a name and an
// affiliation.
func (a pubmedArticle) toPaper() types.Paper {
	p := types.Paper{
		PubmedID:        a.PMID,
		Title:           string(a.Article.Title),
		PublicationDate: a.Article.PubYear,
		Authors:         []string{},
		Affiliations:    []string{},
	}
	for _, au := range a.Article.Authors {
		name := au.displayName()
		aff := au.firstAffiliation()
		if name == "" || aff == "" {
			continue
		}
		p.Authors = append(p.Authors, name)
		p.Affiliations = append(p.Affiliations, aff)
	}
	return p
}
