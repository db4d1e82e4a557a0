package main

import (
	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pdftoolbox",
	Short: "Web service and CLI for PDF merge, delete and extract operations",
	Long: `PDF Toolbox is a web service for everyday PDF operations:

  - Merge multiple PDFs into one document
  - Delete pages from a PDF
  - Extract pages into a new PDF

Pages are addressed with a compact specification like "1,3-5,7".
All processing happens in memory; uploaded files are never stored.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdftoolbox/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "pdftoolbox home directory (default: ~/.pdftoolbox)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
