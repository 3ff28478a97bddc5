// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the E-utilities clients.
type HTTPConfig struct {
	// Timeout is the HTTP client timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EutilsConfig holds settings for the ESearch and EFetch calls.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the ESearch endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// FetchURL is the EFetch endpoint.
	FetchURL string `json:"fetch_url" yaml:"fetch_url"`

	// Tool and Email identify the caller to NCBI. Both are optional and
	// are only sent when set.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// MaxResults caps the number of IDs returned by ESearch (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize is the number of records requested from EFetch (default 10).
	// It is independent of MaxResults: only the first BatchSize papers of
	// the search history are fetched.
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}

// OutputFormat selects how a report is written.
type OutputFormat string

const (
	FormatTable    OutputFormat = "table"
	FormatCSV      OutputFormat = "csv"
	FormatJSON     OutputFormat = "json"
	FormatYAML     OutputFormat = "yaml"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputConfig holds settings for writing the report.
type OutputConfig struct {
	// Path is the output file. Empty means standard output.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Format selects the writer. Empty resolves to csv for files and table
	// for standard output.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty"`
}

// ResolvedFormat returns Format, or the default for the configured target.
func (c OutputConfig) ResolvedFormat() OutputFormat {
	if c.Format != "" {
		return c.Format
	}
	if c.Path != "" {
		return FormatCSV
	}
	return FormatTable
}
