// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/eutils"
	"github.com/pdiddy/pubmed-papers/internal/pipeline"
	"github.com/pdiddy/pubmed-papers/internal/report"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const defaultUserAgent = "pubmed-papers/0.1"

// envKeyReplacer maps nested keys such as eutils.email to
// GET_PAPERS_LIST_EUTILS_EMAIL.
var envKeyReplacer = strings.NewReplacer(".", "_")

// eutilsConfig assembles the E-utilities settings from viper (config file,
// environment and bound flags). The NCBI tool and email fall back to the
// values in .secrets/ when not configured.
func eutilsConfig() types.EutilsConfig {
	cfg := eutils.DefaultConfig()
	if v := viper.GetString("eutils.search_url"); v != "" {
		cfg.SearchURL = v
	}
	if v := viper.GetString("eutils.fetch_url"); v != "" {
		cfg.FetchURL = v
	}
	if v := viper.GetInt("max_results"); v > 0 {
		cfg.MaxResults = v
	}
	if v := viper.GetInt("batch_size"); v > 0 {
		cfg.BatchSize = v
	}
	cfg.Timeout = viper.GetDuration("http.timeout")
	cfg.UserAgent = viper.GetString("http.user_agent")
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	cfg.Tool = secretDefault(secrets.NCBITool, viper.GetString("eutils.tool"))
	cfg.Email = secretDefault(secrets.NCBIEmail, viper.GetString("eutils.email"))
	return cfg
}

// runQuery runs the pipeline for the query argument. A failed run is logged
// and swallowed so the process exits normally; only invalid flags are
// reported as command errors.
func runQuery(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	formatName, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg := eutilsConfig()
	client := eutils.NewClient(nil, cfg)

	opts := pipeline.Options{
		Query:      args[0],
		MaxResults: cfg.MaxResults,
		BatchSize:  cfg.BatchSize,
		Output:     types.OutputConfig{Path: filePath, Format: format},
		Stdout:     os.Stdout,
	}
	if _, err := pipeline.Run(cmd.Context(), client, opts, logger); err != nil {
		logger.Error("An error occurred while processing the PubMed query.", "error", err)
	}
	return nil
}
