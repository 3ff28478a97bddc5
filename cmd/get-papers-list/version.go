package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of get-papers-list",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("get-papers-list %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
