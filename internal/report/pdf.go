package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// PDFExporter renders an AnalysisResult to a one-page A4 PDF.
type PDFExporter struct {
	logger *logger.Logger
}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter(log *logger.Logger) *PDFExporter {
	return &PDFExporter{logger: log}
}

// Export renders the analysis to PDF bytes.
func (e *PDFExporter) Export(result *contracts.AnalysisResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 9, fmt.Sprintf("%s Analysis Report", result.Ticker), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", result.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	e.summaryTable(pdf, result)
	pdf.Ln(4)

	e.reasonSection(pdf, "Fundamental Checks", result.Fundamental.Reasons)
	e.reasonSection(pdf, "Technical Checks", result.Technical.Reasons)
	e.planSection(pdf, result.Plan)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	e.logger.WithFields(map[string]interface{}{
		"ticker":   result.Ticker,
		"pdf_size": buf.Len(),
	}).Debug("PDF report generated")

	return buf.Bytes(), nil
}

// ExportFile renders the analysis to a PDF file on disk.
func (e *PDFExporter) ExportFile(result *contracts.AnalysisResult, path string) error {
	data, err := e.Export(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func (e *PDFExporter) summaryTable(pdf *fpdf.Fpdf, result *contracts.AnalysisResult) {
	rows := [][2]string{
		{"Sector", string(result.Sector)},
		{"Current Price", formatPrice(result.CurrentPrice)},
		{"Sentiment", string(result.Sentiment)},
		{"Fundamental Score", fmt.Sprintf("%d / 100", result.Fundamental.Score)},
		{"Technical Score", fmt.Sprintf("%d / 100", result.Technical.Score)},
	}
	if result.SolvencyLabel != "" {
		rows = append(rows, [2]string{"Solvency", result.SolvencyLabel + ratioProvenance(result)})
	}

	labelWidth := 55.0
	valueWidth := 125.0
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, 7, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(valueWidth, 7, row[1], "1", 1, "L", true, 0, "")
	}
}

func (e *PDFExporter) reasonSection(pdf *fpdf.Fpdf, title string, reasons []string) {
	if len(reasons) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, reason := range reasons {
		pdf.CellFormat(0, 6, "- "+reason, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

func (e *PDFExporter) planSection(pdf *fpdf.Fpdf, plan contracts.TradingPlan) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Trading Plan (%s)", plan.Profile), "", 1, "L", false, 0, "")

	rows := [][2]string{
		{"Entry Band", fmt.Sprintf("%s - %s", formatPrice(plan.EntryLow), formatPrice(plan.EntryHigh))},
		{"Stop Loss", fmt.Sprintf("%s (%s)", formatPrice(plan.StopLoss), plan.StopBasis)},
	}
	if len(plan.TakeProfitTiers) > 1 {
		rows = append(rows, [2]string{"Take Profit", formatTiers(plan.TakeProfitTiers)})
	} else {
		rows = append(rows, [2]string{"Take Profit", formatPrice(plan.TakeProfit)})
	}
	rows = append(rows,
		[2]string{"Risk / Reward", fmt.Sprintf("%.1f%% / %.1f%%", plan.RiskPct, plan.RewardPct)},
		[2]string{"Recommendation", plan.Recommendation},
	)

	labelWidth := 55.0
	valueWidth := 125.0
	pdf.SetFillColor(255, 255, 255)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(valueWidth, 7, row[1], "1", 1, "L", false, 0, "")
	}
}
