// Package report renders an AnalysisResult for humans: a console
// summary for the CLI and a one-page PDF export. Both read only the
// finished result and never recompute scores.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/prasetyo/idxquant/internal/contracts"
)

// WriteConsole renders the analysis summary as plain text.
func WriteConsole(w io.Writer, result *contracts.AnalysisResult) {
	line := strings.Repeat("=", 54)

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "  %s  (%s)\n", result.Ticker, result.Sector)
	fmt.Fprintln(w, line)

	fmt.Fprintf(w, "Price        : %s\n", formatPrice(result.CurrentPrice))
	fmt.Fprintf(w, "Sentiment    : %s\n", result.Sentiment)
	fmt.Fprintf(w, "Fundamental  : %d/100\n", result.Fundamental.Score)
	fmt.Fprintf(w, "Technical    : %d/100\n", result.Technical.Score)
	if result.SolvencyLabel != "" {
		fmt.Fprintf(w, "Solvency     : %s%s\n", result.SolvencyLabel, ratioProvenance(result))
	}

	if len(result.Fundamental.Reasons) > 0 {
		fmt.Fprintln(w, "\nFundamental checks:")
		for _, reason := range result.Fundamental.Reasons {
			fmt.Fprintf(w, "  + %s\n", reason)
		}
	}
	if len(result.Technical.Reasons) > 0 {
		fmt.Fprintln(w, "\nTechnical checks:")
		for _, reason := range result.Technical.Reasons {
			fmt.Fprintf(w, "  + %s\n", reason)
		}
	}

	plan := result.Plan
	fmt.Fprintf(w, "\nTrading plan (%s):\n", plan.Profile)
	fmt.Fprintf(w, "  Entry band   : %s - %s\n", formatPrice(plan.EntryLow), formatPrice(plan.EntryHigh))
	fmt.Fprintf(w, "  Stop loss    : %s (%s, risk %.1f%%)\n", formatPrice(plan.StopLoss), plan.StopBasis, plan.RiskPct)
	if len(plan.TakeProfitTiers) > 1 {
		fmt.Fprintf(w, "  Take profit  : %s\n", formatTiers(plan.TakeProfitTiers))
	} else {
		fmt.Fprintf(w, "  Take profit  : %s (reward %.1f%%)\n", formatPrice(plan.TakeProfit), plan.RewardPct)
	}
	fmt.Fprintf(w, "  Call         : %s\n", plan.Recommendation)

	fmt.Fprintf(w, "\nGenerated %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
}

// WriteScreenConsole renders a screening sweep as a ranked table.
func WriteScreenConsole(w io.Writer, result *contracts.ScreeningResult) {
	if len(result.Candidates) == 0 {
		fmt.Fprintln(w, "No candidates passed the screen.")
	} else {
		fmt.Fprintf(w, "%-4s %-8s %6s %10s %8s %14s\n", "#", "Ticker", "Score", "Price", "RSI", "Avg Value")
		for i, c := range result.Candidates {
			fmt.Fprintf(w, "%-4d %-8s %6d %10s %8.1f %14s\n",
				i+1, c.Ticker, c.Score, formatPrice(c.Price), c.RSI, formatNotional(c.Notional))
		}
	}
	if len(result.Missed) > 0 {
		fmt.Fprintf(w, "\nSkipped (fetch or data problems): %s\n", strings.Join(result.Missed, ", "))
	}
	fmt.Fprintf(w, "\nSwept %s\n", result.SweptAt.Format("2006-01-02 15:04:05"))
}

func ratioProvenance(result *contracts.AnalysisResult) string {
	if result.Sector != contracts.SectorBank {
		return ""
	}
	if result.BankRatioMeasured {
		return " (scraped ratios)"
	}
	return " (proxy ratios)"
}

func formatPrice(v float64) string {
	return "Rp " + groupThousands(fmt.Sprintf("%.0f", v))
}

// formatNotional shortens large rupiah amounts to B/T suffixes.
func formatNotional(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("Rp %.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("Rp %.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("Rp %.1fM", v/1e6)
	default:
		return fmt.Sprintf("Rp %.0f", v)
	}
}

func formatTiers(tiers []float64) string {
	parts := make([]string, len(tiers))
	for i, t := range tiers {
		parts[i] = fmt.Sprintf("TP%d %s", i+1, formatPrice(t))
	}
	return strings.Join(parts, " / ")
}

// groupThousands inserts dots as thousand separators, Indonesian style.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
