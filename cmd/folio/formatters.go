package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/folio/internal/models"
)

// formatHoldingsReport formats the enriched holdings list as markdown
func formatHoldingsReport(report models.HoldingsReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Holdings (%d)\n\n", report.Summary.TotalHoldings))

	if len(report.Holdings) == 0 {
		sb.WriteString("No holdings found.\n\n")
		return sb.String()
	}

	for i, h := range report.Holdings {
		sb.WriteString(fmt.Sprintf("### %d. %s - %s\n", i+1, h.Ticker, h.Name))
		if h.Sector != "" {
			sb.WriteString(fmt.Sprintf("**Sector:** %s\n", h.Sector))
		}
		sb.WriteString(fmt.Sprintf("**Quantity:** %g @ %.2f (now %.2f)\n", h.Quantity, h.PurchasePrice, h.CurrentPrice))
		sb.WriteString(fmt.Sprintf("**Value:** %.2f (cost %.2f)\n", h.CurrentValue, h.CostBasis))
		sb.WriteString(fmt.Sprintf("**P/L:** %.2f (%.2f%%)\n\n", h.ProfitLoss, h.ProfitLossPct))
	}

	return sb.String()
}

// formatSummary formats the portfolio summary as markdown
func formatSummary(summary models.PortfolioSummary) string {
	var sb strings.Builder
	sb.WriteString("## Portfolio Summary\n\n")
	sb.WriteString(fmt.Sprintf("**Holdings:** %d\n", summary.TotalHoldings))
	sb.WriteString(fmt.Sprintf("**Total value:** %.2f\n", summary.TotalPortfolioValue))
	sb.WriteString(fmt.Sprintf("**Total cost:** %.2f\n", summary.TotalPortfolioCost))
	sb.WriteString(fmt.Sprintf("**Overall P/L:** %.2f (%.2f%%)\n\n", summary.OverallProfitLoss, summary.OverallProfitLossPct))
	return sb.String()
}

// formatDiversification formats the diversification report as markdown
func formatDiversification(report models.DiversificationReport) string {
	var sb strings.Builder
	sb.WriteString("## Diversification\n\n")

	if len(report.SectorWeights) > 0 {
		sectors := make([]string, 0, len(report.SectorWeights))
		for sector := range report.SectorWeights {
			sectors = append(sectors, sector)
		}
		sort.Strings(sectors)

		sb.WriteString("**Sector weights:**\n")
		for _, sector := range sectors {
			sb.WriteString(fmt.Sprintf("- %s: %.1f%%\n", sector, report.SectorWeights[sector]))
		}
		sb.WriteString("\n")
	}

	if len(report.PositionWeights) > 0 {
		sb.WriteString("**Position weights:**\n")
		for _, pw := range report.PositionWeights {
			sb.WriteString(fmt.Sprintf("- %s (%s): %.1f%%\n", pw.Ticker, pw.Name, pw.WeightPct))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("**HHI:** %.4f\n", report.HHI))
	sb.WriteString(fmt.Sprintf("**Top position weight:** %.1f%%\n", report.TopPositionWeight))
	sb.WriteString(fmt.Sprintf("**Notes:** %s\n\n", report.Notes))

	return sb.String()
}

// formatRisk formats the risk report as markdown
func formatRisk(report models.RiskReport) string {
	var sb strings.Builder
	sb.WriteString("## Risk Assessment\n\n")
	sb.WriteString(fmt.Sprintf("**Score:** %.1f / 10 (%s)\n", report.RiskScore, report.RiskLevel))

	if len(report.Factors) > 0 {
		sb.WriteString("**Factors:**\n")
		for _, factor := range report.Factors {
			sb.WriteString(fmt.Sprintf("- %s\n", factor))
		}
	} else {
		sb.WriteString("No risk factors triggered.\n")
	}

	sb.WriteString(fmt.Sprintf("\n**Inputs:** top weight %.1f%%, HHI %.4f, %d holdings, %d sectors\n",
		report.Inputs.TopPositionWeightPct, report.Inputs.HHI, report.Inputs.NumHoldings, report.Inputs.NumSectors))

	return sb.String()
}
