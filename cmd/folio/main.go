package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/folio/internal/analytics"
	"github.com/ternarybob/folio/internal/common"
	"github.com/ternarybob/folio/internal/store"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles   configPaths // Multiple -config flags supported
	portfolioPath = flag.String("portfolio", "", "Portfolio file path (overrides config)")
	showVersion   = flag.Bool("version", false, "Print version information")
	showVersionV  = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Folio version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner
	var err error

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("folio.toml"); err == nil {
			configFiles = append(configFiles, "folio.toml")
		}
	}

	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	common.ApplyFlagOverrides(config, *portfolioPath)

	logger = common.InitLogger(config)

	common.PrintBanner(common.GetVersion())

	logger.Debug().
		Str("portfolio_path", config.Portfolio.Path).
		Str("log_level", config.Logging.Level).
		Msg("Configuration resolved")

	// Load the snapshot once; analytics operations are pure reads over it
	snapshot, err := store.Load(config.Portfolio.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", config.Portfolio.Path).Msg("Failed to load portfolio")
		os.Exit(1)
	}

	logger.Info().
		Str("snapshot_id", snapshot.ID()).
		Int("holdings", snapshot.Count()).
		Msg("Portfolio loaded")

	service := analytics.NewService(snapshot, analytics.ConfigFromApp(config.Analytics), logger)

	fmt.Print(formatHoldingsReport(service.AllHoldings()))
	fmt.Print(formatSummary(service.Summary()))
	fmt.Print(formatDiversification(service.AssessDiversification()))
	fmt.Print(formatRisk(service.AssessRisk()))
}
