// Package analytics derives portfolio metrics from the holdings snapshot.
// Every operation is a pure, side-effect-free read: nothing is cached
// between calls and identical snapshot contents produce identical output.
package analytics

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/folio/internal/interfaces"
	"github.com/ternarybob/folio/internal/models"
)

// Service computes valuation, diversification and risk metrics over a
// holding source.
type Service struct {
	source interfaces.HoldingSource
	config Config
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.AnalyticsService = (*Service)(nil)

// NewService creates a new analytics service
func NewService(source interfaces.HoldingSource, config Config, logger arbor.ILogger) *Service {
	return &Service{
		source: source,
		config: config,
		logger: logger,
	}
}

// metricsFor enriches a holding with its derived valuation figures.
// Monetary values are rounded to cents, percentages to two places.
// A zero cost basis reports a zero percentage rather than failing.
func metricsFor(h models.Holding) models.HoldingMetrics {
	value := h.CurrentValue()
	cost := h.CostBasis()
	profitLoss := value - cost

	profitLossPct := 0.0
	if cost > 0 {
		profitLossPct = profitLoss / cost * 100
	}

	return models.HoldingMetrics{
		Ticker:        h.Ticker,
		Name:          h.Name,
		Sector:        h.Sector,
		Quantity:      h.Quantity,
		PurchasePrice: h.PurchasePrice,
		CurrentPrice:  h.CurrentPrice,
		CurrentValue:  round(value, 2),
		CostBasis:     round(cost, 2),
		ProfitLoss:    round(profitLoss, 2),
		ProfitLossPct: round(profitLossPct, 2),
	}
}

// AllHoldings returns every holding enriched with valuation figures plus
// portfolio-level totals. An empty snapshot yields an empty list and
// all-zero totals.
func (s *Service) AllHoldings() models.HoldingsReport {
	holdings := s.source.All()

	enriched := make([]models.HoldingMetrics, 0, len(holdings))
	totalValue := 0.0
	totalCost := 0.0
	for _, h := range holdings {
		m := metricsFor(h)
		enriched = append(enriched, m)
		totalValue += m.CurrentValue
		totalCost += m.CostBasis
	}

	return models.HoldingsReport{
		Holdings: enriched,
		Summary: models.HoldingsReportSummary{
			TotalHoldings:       len(enriched),
			TotalPortfolioValue: round(totalValue, 2),
			TotalPortfolioCost:  round(totalCost, 2),
			OverallProfitLoss:   round(totalValue-totalCost, 2),
		},
	}
}

// HoldingByTicker returns the enriched holding whose ticker matches
// case-insensitively, ignoring surrounding whitespace.
func (s *Service) HoldingByTicker(ticker string) (models.HoldingMetrics, error) {
	h, err := s.source.Get(ticker)
	if err != nil {
		return models.HoldingMetrics{}, err
	}
	return metricsFor(h), nil
}

// Summary returns portfolio-level valuation aggregates. Totals are the
// sums of the per-holding rounded figures, so they always reconcile with
// AllHoldings. An empty snapshot yields zeros, never NaN.
func (s *Service) Summary() models.PortfolioSummary {
	totalValue := 0.0
	totalCost := 0.0
	count := 0
	for _, h := range s.source.All() {
		m := metricsFor(h)
		totalValue += m.CurrentValue
		totalCost += m.CostBasis
		count++
	}

	profitLoss := totalValue - totalCost
	profitLossPct := 0.0
	if totalCost > 0 {
		profitLossPct = profitLoss / totalCost * 100
	}

	return models.PortfolioSummary{
		TotalHoldings:        count,
		TotalPortfolioValue:  round(totalValue, 2),
		TotalPortfolioCost:   round(totalCost, 2),
		OverallProfitLoss:    round(profitLoss, 2),
		OverallProfitLossPct: round(profitLossPct, 2),
	}
}
