// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It searches
// PubMed, flags authors with non-academic affiliations, and prints the
// report or saves it to a file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/logging"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds contact settings loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is configured from --debug before any command runs.
var logger = logging.New(os.Stderr, false)

// secretDefault returns fallback if set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd searches PubMed for the query given as its only argument.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "List PubMed papers with authors affiliated with companies",
	Long: `get-papers-list searches PubMed for papers matching a query, fetches
author affiliations for the first batch of results, and reports the
authors whose affiliation carries no academic keyword (school, university,
college, institute, research, lab).

The report is printed as a table, or written as CSV when --file is given.
Use --format to pick json, yaml or markdown instead.`,
	Example: `  get-papers-list "cancer immunotherapy"
  get-papers-list "crispr[Title]" -f results.csv -d`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger = logging.New(os.Stderr, debug)
		slog.SetDefault(logger)

		s, err := secrets.Load(".secrets/", func(name string, err error) {
			logger.Warn("could not read secret", "name", name, "error", err)
		})
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug("loaded secrets", "keys", keys)
		}
		return nil
	},
	RunE: runQuery,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "print debug information during execution")

	rootCmd.Flags().StringP("file", "f", "", "save the results to this file instead of printing them")
	rootCmd.Flags().String("format", "", "output format: table, csv, json, yaml, markdown (default csv with --file, table otherwise)")
	rootCmd.Flags().Int("max-results", 0, "maximum number of IDs returned by the search (default 100)")
	rootCmd.Flags().Int("batch-size", 0, "number of papers fetched from the search results (default 10)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default none)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.BindPFlag("max_results", rootCmd.Flags().Lookup("max-results"))
	viper.BindPFlag("batch_size", rootCmd.Flags().Lookup("batch-size"))
	viper.BindPFlag("http.timeout", rootCmd.Flags().Lookup("timeout"))

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
