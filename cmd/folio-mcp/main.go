package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/folio/internal/analytics"
	"github.com/ternarybob/folio/internal/common"
	"github.com/ternarybob/folio/internal/store"
)

func main() {
	// Load configuration
	configPath := os.Getenv("FOLIO_CONFIG")
	if configPath == "" {
		configPath = "folio.toml"
	}
	if _, err := os.Stat(configPath); err != nil {
		// No config file - run on defaults plus env overrides
		configPath = ""
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logger for the MCP server (console only, warn level to
	// avoid cluttering MCP stdio)
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	// Load the portfolio snapshot once; it stays immutable for the
	// lifetime of the process
	snapshot, err := store.Load(config.Portfolio.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", config.Portfolio.Path).Msg("Failed to load portfolio")
	}

	// Initialize analytics service
	analyticsService := analytics.NewService(snapshot, analytics.ConfigFromApp(config.Analytics), logger)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"folio",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register portfolio tools
	mcpServer.AddTool(createGetAllHoldingsTool(), handleGetAllHoldings(analyticsService, logger))
	mcpServer.AddTool(createGetHoldingByTickerTool(), handleGetHoldingByTicker(analyticsService, logger))
	mcpServer.AddTool(createGetPortfolioSummaryTool(), handleGetPortfolioSummary(analyticsService, logger))
	mcpServer.AddTool(createAssessDiversificationTool(), handleAssessDiversification(analyticsService, logger))
	mcpServer.AddTool(createAssessRiskTool(), handleAssessRisk(analyticsService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
