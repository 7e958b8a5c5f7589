// Package main provides the entry point for the universe CLI: the loading,
// table and plot-data glue around the clustering core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattdell71/universe/cmd/universe/commands"
)

// version is stamped by the build (-ldflags "-X main.version=...").
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "universe",
		Short: "Error-weighted clustering of stellar spectral-index tables",
		Long: `universe detects sub-populations in per-star spectral-index tables and
quantifies how measurement noise affects the stability of the detected groups.

Commands:
  compare    Score candidate group counts under all clustering methods
  stability  Monte Carlo resampling of the clustering under measurement noise`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewCompareCommand())
	rootCmd.AddCommand(commands.NewStabilityCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "universe %s\n", version)
		},
	}
}
