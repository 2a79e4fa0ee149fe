package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/folio/internal/interfaces"
	"github.com/ternarybob/folio/internal/models"
)

// handleGetAllHoldings implements the get_all_holdings tool
func handleGetAllHoldings(service interfaces.AnalyticsService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(service.AllHoldings(), logger)
	}
}

// handleGetHoldingByTicker implements the get_holding_by_ticker tool
func handleGetHoldingByTicker(service interfaces.AnalyticsService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Parse ticker parameter (required)
		ticker, err := request.RequireString("ticker")
		if err != nil || ticker == "" {
			return errorResult("Error: ticker parameter is required"), nil
		}

		holding, err := service.HoldingByTicker(ticker)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				return errorResult(fmt.Sprintf("Holding not found: %v", err)), nil
			case errors.Is(err, models.ErrInvalidArgument):
				return errorResult(fmt.Sprintf("Invalid ticker: %v", err)), nil
			default:
				logger.Error().Err(err).Str("ticker", ticker).Msg("HoldingByTicker failed")
				return errorResult(fmt.Sprintf("Lookup error: %v", err)), nil
			}
		}

		return jsonResult(holding, logger)
	}
}

// handleGetPortfolioSummary implements the get_portfolio_summary tool
func handleGetPortfolioSummary(service interfaces.AnalyticsService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(service.Summary(), logger)
	}
}

// handleAssessDiversification implements the assess_diversification tool
func handleAssessDiversification(service interfaces.AnalyticsService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(service.AssessDiversification(), logger)
	}
}

// handleAssessRisk implements the assess_risk tool
func handleAssessRisk(service interfaces.AnalyticsService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(service.AssessRisk(), logger)
	}
}
