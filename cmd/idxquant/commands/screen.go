package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prasetyo/idxquant/internal/report"
	"github.com/prasetyo/idxquant/internal/screening"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen the IDX universe for uptrend candidates",
	Long: `Sweeps the built-in ticker universe with the reduced technical
check and prints the passers ranked by score.

Example:
  go run ./cmd/idxquant screen
  go run ./cmd/idxquant screen --tickers BBCA,TLKM,ASII`,
	RunE: runScreen,
}

var screenTickers string

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringVar(&screenTickers, "tickers", "", "comma-separated ticker list (default is the built-in universe)")
}

func runScreen(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	universe := screening.DefaultUniverse()
	if screenTickers != "" {
		universe = nil
		for _, t := range strings.Split(screenTickers, ",") {
			if t = strings.TrimSpace(t); t != "" {
				universe = append(universe, strings.ToUpper(t))
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	result, err := d.ranker.Screen(ctx, universe)
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	report.WriteScreenConsole(os.Stdout, &result)
	return nil
}
