package models

// HoldingMetrics is a holding enriched with derived valuation figures.
// Derived fields are never stored - they are recomputed from the snapshot
// on every call so the raw holdings stay the single source of truth.
type HoldingMetrics struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
	CostBasis     float64 `json:"cost_basis"`
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitLossPct float64 `json:"profit_loss_pct"`
}

// PortfolioSummary contains portfolio-level valuation aggregates
type PortfolioSummary struct {
	TotalHoldings        int     `json:"total_holdings"`
	TotalPortfolioValue  float64 `json:"total_portfolio_value"`
	TotalPortfolioCost   float64 `json:"total_portfolio_cost"`
	OverallProfitLoss    float64 `json:"overall_profit_loss"`
	OverallProfitLossPct float64 `json:"overall_profit_loss_pct"`
}

// HoldingsReport pairs the enriched holdings with a summary block.
// The summary here carries no percentage - that belongs to the
// dedicated portfolio summary operation.
type HoldingsReport struct {
	Holdings []HoldingMetrics      `json:"holdings"`
	Summary  HoldingsReportSummary `json:"summary"`
}

// HoldingsReportSummary is the summary block of a HoldingsReport
type HoldingsReportSummary struct {
	TotalHoldings       int     `json:"total_holdings"`
	TotalPortfolioValue float64 `json:"total_portfolio_value"`
	TotalPortfolioCost  float64 `json:"total_portfolio_cost"`
	OverallProfitLoss   float64 `json:"overall_profit_loss"`
}

// PositionWeight is a single position's share of total portfolio value
type PositionWeight struct {
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name"`
	WeightPct float64 `json:"weight_pct"`
}

// DiversificationReport contains sector and concentration metrics
type DiversificationReport struct {
	SectorWeights     map[string]float64 `json:"sector_weights"`
	PositionWeights   []PositionWeight   `json:"position_weights"`
	HHI               float64            `json:"hhi"`
	TopPositionWeight float64            `json:"top_position_weight"`
	NumHoldings       int                `json:"num_holdings"`
	Notes             string             `json:"notes"`
}

// RiskInputs echoes the raw signals the risk score was derived from
type RiskInputs struct {
	TopPositionWeightPct float64 `json:"top_position_weight_pct"`
	HHI                  float64 `json:"hhi"`
	NumHoldings          int     `json:"num_holdings"`
	NumSectors           int     `json:"num_sectors"`
}

// RiskReport contains the heuristic risk assessment
type RiskReport struct {
	RiskScore float64    `json:"risk_score"`
	RiskLevel string     `json:"risk_level"`
	Factors   []string   `json:"factors"`
	Inputs    RiskInputs `json:"inputs"`
}
