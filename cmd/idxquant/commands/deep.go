package commands

import (
	"github.com/spf13/cobra"

	"github.com/prasetyo/idxquant/internal/analysis"
)

// deepCmd represents the deep command
var deepCmd = &cobra.Command{
	Use:   "deep [ticker]",
	Short: "Deep technical analysis of one IDX ticker",
	Long: `Runs the deep analysis pass for one ticker. Differs from the
quick pass in the trading plan profile (tighter stop, tiered take
profits) and in comparing momentum against five sessions back instead
of one.

Example:
  go run ./cmd/idxquant deep BBRI
  go run ./cmd/idxquant deep BBRI --pdf bbri.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0], analysis.ModeDeep, deepPDF)
	},
}

var deepPDF string

func init() {
	rootCmd.AddCommand(deepCmd)

	deepCmd.Flags().StringVar(&deepPDF, "pdf", "", "also write a PDF report to this path")
}
