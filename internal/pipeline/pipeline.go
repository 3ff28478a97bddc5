// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the search, fetch, classify and output steps shared
// by the CLI and the library entry point.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/pubmed-papers/internal/eutils"
	"github.com/pdiddy/pubmed-papers/internal/report"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Searcher resolves a query to a server-side result set.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) (eutils.SearchResult, error)
}

// Fetcher retrieves the papers of a result set.
type Fetcher interface {
	Fetch(ctx context.Context, queryKey, webEnv string, batchSize int) ([]types.Paper, error)
}

// Source is the pair of E-utilities calls the pipeline makes.
// *eutils.Client implements it.
type Source interface {
	Searcher
	Fetcher
}

// Options controls one pipeline run.
type Options struct {
	// Query is the PubMed search term.
	Query string

	// MaxResults caps the IDs returned by the search; <= 0 uses the
	// source default.
	MaxResults int

	// BatchSize is the number of records fetched; <= 0 uses the source
	// default.
	BatchSize int

	// Output selects where and how the report is written.
	Output types.OutputConfig

	// Stdout receives the report when Output.Path is empty. Nil means the
	// report is only returned.
	Stdout io.Writer
}

// Run executes the pipeline: search, fetch, build the report, then write it
// to Output.Path or Stdout. Errors from any step are returned unchanged;
// callers decide how to surface them.
func Run(ctx context.Context, src Source, opts Options, logger *slog.Logger) (types.Report, error) {
	if opts.Query == "" {
		return types.Report{}, fmt.Errorf("query is empty")
	}

	logger.Info("Starting PubMed query...", "query", opts.Query)

	found, err := src.Search(ctx, opts.Query, opts.MaxResults)
	if err != nil {
		return types.Report{}, err
	}
	logger.Info("Fetched paper IDs.", "count", len(found.IDs))
	logger.Debug("search history", "query_key", found.QueryKey, "web_env", found.WebEnv, "count", found.Count)

	var papers []types.Paper
	if len(found.IDs) > 0 {
		papers, err = src.Fetch(ctx, found.QueryKey, found.WebEnv, opts.BatchSize)
		if err != nil {
			return types.Report{}, err
		}
	}
	logger.Info("Fetched paper details.", "count", len(papers))
	for _, p := range papers {
		logger.Debug("paper", "pmid", p.PubmedID, "authors", len(p.Authors))
	}

	rep := report.Build(papers)
	logger.Info("Processed paper details to identify non-academic authors.")

	format := opts.Output.ResolvedFormat()
	switch {
	case opts.Output.Path != "":
		if err := report.WriteFile(opts.Output.Path, rep, format); err != nil {
			return types.Report{}, err
		}
		logger.Info("Results saved.", "path", opts.Output.Path)
	case opts.Stdout != nil:
		if err := report.Write(opts.Stdout, rep, format); err != nil {
			return types.Report{}, err
		}
	}

	return rep, nil
}
