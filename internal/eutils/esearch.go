// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
)

// SearchResult is the outcome of an ESearch call. QueryKey and WebEnv
// identify the result set on the server for a later Fetch.
type SearchResult struct {
	IDs      []string
	QueryKey string
	WebEnv   string
	Count    int
}

// eSearchResult mirrors the ESearch XML response.
type eSearchResult struct {
	Count    string   `xml:"Count"`
	QueryKey string   `xml:"QueryKey"`
	WebEnv   string   `xml:"WebEnv"`
	IDs      []string `xml:"IdList>Id"`
}

// SearchURL builds the ESearch request URL for query. maxResults <= 0
// uses the client's configured cap.
func (c *Client) SearchURL(query string, maxResults int) string {
	if maxResults <= 0 {
		maxResults = c.cfg.MaxResults
	}
	params := Params{}.
		Add("db", database).
		Add("term", url.QueryEscape(query)).
		Add("retmax", strconv.Itoa(maxResults)).
		Add("usehistory", "y")
	return BuildURL(c.cfg.SearchURL, c.identify(params))
}

// Search runs query against PubMed with history enabled and returns the
// matching IDs along with the history token.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (SearchResult, error) {
	var res eSearchResult
	if err := httputil.GetXML(ctx, c.HTTP, c.SearchURL(query, maxResults), c.cfg.UserAgent, &res); err != nil {
		return SearchResult{}, fmt.Errorf("esearch: %w", err)
	}

	out := SearchResult{
		IDs:      res.IDs,
		QueryKey: res.QueryKey,
		WebEnv:   res.WebEnv,
	}
	if res.Count != "" {
		// Count is informational; a malformed value does not fail the search.
		if n, err := strconv.Atoi(res.Count); err == nil {
			out.Count = n
		}
	}
	return out, nil
}
