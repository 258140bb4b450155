// Package cmd has the cobra commands of the reef CLI.
package cmd

import (
	"github.com/huangsam/reef/internal/contract"
	"github.com/huangsam/reef/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Initialize Viper configuration before any command runs
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringP("author", "a", "", "Filter commits by author")
	rootCmd.Flags().StringP("since", "s", "", "Show commits since date (YYYY-MM-DD, RFC3339 or '3 months ago')")
	rootCmd.Flags().StringP("until", "u", "", "Show commits until date (YYYY-MM-DD, RFC3339 or '1 week ago')")
	rootCmd.Flags().StringP("weeks", "w", "", "Number of weeks to display, 1-104 (default 52)")
	rootCmd.Flags().Bool("no-stats", false, "Hide statistics")
	rootCmd.Flags().Bool("no-legend", false, "Hide legend")
	rootCmd.Flags().Bool("trend", false, "Plot commits per week below the reef")
	rootCmd.Flags().Int("authors", 0, "Show a table of the top N authors (0 = off)")
	rootCmd.Flags().String("output", string(schema.TextOut), "Output format: text or json or csv")
	rootCmd.Flags().String("color", "auto", "Colored output: yes/no/auto (auto = only when stdout is a terminal)")
	rootCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.Flags().Bool("debug", false, "Log git invocations and parsing details to stderr")
	rootCmd.Flags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
