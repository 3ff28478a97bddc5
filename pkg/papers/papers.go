// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers is the library entry point: it runs the PubMed query
// pipeline and returns the non-academic author report.
package papers

import (
	"context"
	"io"
	"net/http"

	"github.com/pdiddy/pubmed-papers/internal/eutils"
	"github.com/pdiddy/pubmed-papers/internal/logging"
	"github.com/pdiddy/pubmed-papers/internal/pipeline"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// DefaultMaxResults is the search cap used when maxResults <= 0.
const DefaultMaxResults = eutils.DefaultMaxResults

type settings struct {
	cfg        types.EutilsConfig
	httpClient *http.Client
	logOutput  io.Writer
	format     types.OutputFormat
}

// Option customizes a Fetch call.
type Option func(*settings)

// WithConfig overrides the E-utilities settings (endpoints, tool, email,
// batch size). The maxResults argument of Fetch takes precedence over
// cfg.MaxResults.
func WithConfig(cfg types.EutilsConfig) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithHTTPClient sets the HTTP client used for both requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithLogOutput redirects log lines, which go to standard error by default.
func WithLogOutput(w io.Writer) Option {
	return func(s *settings) { s.logOutput = w }
}

// WithFormat selects the file format used when filePath is set (default csv).
func WithFormat(f types.OutputFormat) Option {
	return func(s *settings) { s.format = f }
}

// Fetch searches PubMed for query, fetches the first batch of matching
// papers and returns one report row per paper. When filePath is non-empty
// the report is also written there. Any failure is logged and an empty
// report is returned; Fetch never returns an error.
func Fetch(ctx context.Context, query string, maxResults int, filePath string, debug bool, opts ...Option) types.Report {
	s := settings{cfg: eutils.DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	logger := logging.New(s.logOutput, debug)

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	client := eutils.NewClient(s.httpClient, s.cfg)

	rep, err := pipeline.Run(ctx, client, pipeline.Options{
		Query:      query,
		MaxResults: maxResults,
		Output:     types.OutputConfig{Path: filePath, Format: s.format},
	}, logger)
	if err != nil {
		logger.Error("An error occurred while processing the PubMed query.", "error", err)
		return types.Report{}
	}
	return rep
}
