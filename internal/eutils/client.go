// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils talks to the NCBI E-utilities endpoints used by the
// pipeline: ESearch to resolve a query into a history token, and EFetch to
// retrieve the PubMed records behind that token.
package eutils

import (
	"net/http"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const (
	// DefaultSearchURL is the ESearch endpoint.
	DefaultSearchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"

	// DefaultFetchURL is the EFetch endpoint.
	DefaultFetchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

	DefaultMaxResults = 100
	DefaultBatchSize  = 10

	database = "pubmed"
)

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() types.EutilsConfig {
	return types.EutilsConfig{
		SearchURL:  DefaultSearchURL,
		FetchURL:   DefaultFetchURL,
		MaxResults: DefaultMaxResults,
		BatchSize:  DefaultBatchSize,
	}
}

// Client issues ESearch and EFetch requests.
type Client struct {
	HTTP *http.Client
	cfg  types.EutilsConfig
}

// NewClient returns a Client for cfg. Empty endpoints and non-positive
// sizes fall back to the defaults. A nil httpClient is replaced by one
// using cfg.Timeout.
func NewClient(httpClient *http.Client, cfg types.EutilsConfig) *Client {
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	if cfg.FetchURL == "" {
		cfg.FetchURL = DefaultFetchURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{HTTP: httpClient, cfg: cfg}
}

// Config returns the effective configuration.
func (c *Client) Config() types.EutilsConfig { return c.cfg }

// identify appends the optional NCBI tool and email parameters.
func (c *Client) identify(p Params) Params {
	return p.AddIfSet("tool", c.cfg.Tool).AddIfSet("email", c.cfg.Email)
}
