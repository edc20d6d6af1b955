package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prasetyo/idxquant/internal/analysis"
	"github.com/prasetyo/idxquant/internal/report"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [ticker]",
	Short: "Quick analysis of one IDX ticker",
	Long: `Runs the quick analysis pass for one ticker: fundamental and
technical scores, sentiment, and the quick-profile trading plan.

Example:
  go run ./cmd/idxquant analyze BBCA
  go run ./cmd/idxquant analyze TLKM --pdf tlkm.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0], analysis.ModeQuick, analyzePDF)
	},
}

var analyzePDF string

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "also write a PDF report to this path")
}

func runAnalyze(ticker string, mode analysis.Mode, pdfPath string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := d.analyzer.Analyze(ctx, ticker, mode)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", ticker, err)
	}

	report.WriteConsole(os.Stdout, result)

	if pdfPath != "" {
		exporter := report.NewPDFExporter(d.log)
		if err := exporter.ExportFile(result, pdfPath); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		fmt.Printf("\nPDF written to %s\n", pdfPath)
	}

	return nil
}
