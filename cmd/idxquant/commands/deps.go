package commands

import (
	"fmt"

	"github.com/prasetyo/idxquant/internal/analysis"
	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/internal/external/cached"
	"github.com/prasetyo/idxquant/internal/external/idnfin"
	"github.com/prasetyo/idxquant/internal/external/yahoo"
	"github.com/prasetyo/idxquant/internal/screening"
	"github.com/prasetyo/idxquant/internal/sectors"
	"github.com/prasetyo/idxquant/pkg/cache"
	"github.com/prasetyo/idxquant/pkg/config"
	"github.com/prasetyo/idxquant/pkg/httputil"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// deps bundles the wired collaborators every command starts from.
type deps struct {
	cfg      *config.Config
	log      *logger.Logger
	provider contracts.MarketDataProvider
	analyzer *analysis.Analyzer
	ranker   *screening.Ranker
}

// buildDeps wires config, logger, HTTP clients, provider cache, analyzer
// and ranker in one place so the commands stay thin.
func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logLevel := cfg.LogLevel
	if verbose {
		logLevel = "debug"
	}
	log := logger.New(logger.Options{
		Level:  logLevel,
		Format: cfg.LogFormat,
	})

	table, err := sectors.Load(sectorFile)
	if err != nil {
		return nil, fmt.Errorf("load sector table: %w", err)
	}

	yahooHTTP := httputil.New(log, cfg.Yahoo.Timeout).
		WithRateLimit(cfg.Screening.RatePerSec)
	yahooClient := yahoo.NewClient(yahooHTTP, cfg.Yahoo.BaseURL, log)

	provider := contracts.MarketDataProvider(yahooClient)
	if cfg.CacheTTL > 0 {
		provider = cached.Wrap(provider, cache.New(cfg.CacheTTL))
	}

	var scraper contracts.BankRatioScraper
	if cfg.Scrape.Enabled {
		scrapeHTTP := httputil.New(log, cfg.Scrape.Timeout)
		scraper = idnfin.NewScraper(scrapeHTTP, cfg.Scrape.BaseURL, log)
	}

	screenCfg := screening.DefaultConfig()
	screenCfg.Concurrency = cfg.Screening.Concurrency
	screenCfg.ItemDelay = cfg.Screening.ItemDelay

	return &deps{
		cfg:      cfg,
		log:      log,
		provider: provider,
		analyzer: analysis.New(provider, scraper, table, log),
		ranker:   screening.NewRanker(provider, screenCfg, log),
	}, nil
}
