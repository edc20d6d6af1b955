package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/prasetyo/idxquant/internal/api"
	"github.com/prasetyo/idxquant/internal/api/handlers"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long: `Starts the REST API server.

Endpoints:
  GET /health                       - Health check
  GET /api/v1/analyze/{ticker}      - Single-ticker analysis (?mode=quick|deep)
  GET /api/v1/screen                - Screening sweep (?tickers=BBCA,TLKM)

Example:
  go run ./cmd/idxquant serve
  go run ./cmd/idxquant serve --port 8087`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default from PORT env)")
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	if servePort != "" {
		d.cfg.Port = servePort
	}

	analysisHandler := handlers.NewAnalysisHandler(d.analyzer, d.log)
	screenHandler := handlers.NewScreenHandler(d.ranker, d.log)
	router := api.NewRouter(analysisHandler, screenHandler, d.log)

	server := api.New(d.cfg, d.log, router)

	go func() {
		if err := server.Start(); err != nil {
			d.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", d.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	d.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	d.log.Info("Server stopped")
	return nil
}
