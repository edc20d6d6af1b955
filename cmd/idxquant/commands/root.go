package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	sectorFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "idxquant",
	Short: "IDX stock analysis and screening toolkit",
	Long: `idxquant - Indonesian equity analysis CLI

Scores IDX-listed stocks on fundamentals and technicals, builds a
trading plan from the indicators, and screens a fixed universe for
uptrend candidates.

Usage:
  go run ./cmd/idxquant [command]

Examples:
  go run ./cmd/idxquant analyze BBCA
  go run ./cmd/idxquant deep TLKM --pdf tlkm.pdf
  go run ./cmd/idxquant screen
  go run ./cmd/idxquant serve --port 8087`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sectorFile, "sectors", "", "sector table YAML (default is the embedded table)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
