package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetAllHoldingsTool returns the get_all_holdings tool definition
func createGetAllHoldingsTool() mcp.Tool {
	return mcp.NewTool("get_all_holdings",
		mcp.WithDescription("Get all portfolio holdings with current values and profit/loss"),
	)
}

// createGetHoldingByTickerTool returns the get_holding_by_ticker tool definition
func createGetHoldingByTickerTool() mcp.Tool {
	return mcp.NewTool("get_holding_by_ticker",
		mcp.WithDescription("Get details for a specific holding by ticker symbol"),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (e.g., 'AAPL', 'MSFT'), case-insensitive"),
		),
	)
}

// createGetPortfolioSummaryTool returns the get_portfolio_summary tool definition
func createGetPortfolioSummaryTool() mcp.Tool {
	return mcp.NewTool("get_portfolio_summary",
		mcp.WithDescription("Get a summary of the entire portfolio: total value, cost and overall profit/loss"),
	)
}

// createAssessDiversificationTool returns the assess_diversification tool definition
func createAssessDiversificationTool() mcp.Tool {
	return mcp.NewTool("assess_diversification",
		mcp.WithDescription("Assess portfolio diversification using sector weights and concentration metrics (HHI, top position weight)"),
	)
}

// createAssessRiskTool returns the assess_risk tool definition
func createAssessRiskTool() mcp.Tool {
	return mcp.NewTool("assess_risk",
		mcp.WithDescription("Heuristic risk assessment (score 1-10) with contributing factors"),
	)
}
