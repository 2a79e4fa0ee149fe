package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/folio/internal/models"
)

func TestAssessRisk_Scenario(t *testing.T) {
	service := newTestService(t, scenarioHoldings())

	report := service.AssessRisk()

	// Very high top weight (+4), high HHI (+3), limited sectors (+2),
	// volatile name (+1), few holdings (+1): clamped to 10
	assert.Equal(t, 10.0, report.RiskScore)
	assert.Equal(t, "High", report.RiskLevel)

	require.Len(t, report.Factors, 5)
	assert.Contains(t, report.Factors[0], "Very high single-position concentration")
	assert.Contains(t, report.Factors[1], "High overall concentration by HHI")
	assert.Contains(t, report.Factors[2], "Limited sector diversification")
	assert.Contains(t, report.Factors[3], "higher-volatility names")
	assert.Contains(t, report.Factors[4], "Few holdings")

	assert.Equal(t, 66.0, report.Inputs.TopPositionWeightPct)
	assert.Equal(t, 0.5514, report.Inputs.HHI)
	assert.Equal(t, 2, report.Inputs.NumHoldings)
	assert.Equal(t, 2, report.Inputs.NumSectors)
}

// broadHoldings builds a well diversified portfolio: ten equal positions
// across five sectors, none on the volatility watch-list.
func broadHoldings() []models.Holding {
	sectors := []string{"Technology", "Financials", "Healthcare", "Energy", "Industrials"}
	holdings := make([]models.Holding, 0, 10)
	for i := 0; i < 10; i++ {
		holdings = append(holdings, models.Holding{
			Ticker:        fmt.Sprintf("DIV%d", i),
			Name:          fmt.Sprintf("Diversified %d", i),
			Sector:        sectors[i%len(sectors)],
			Quantity:      10,
			PurchasePrice: 50,
			CurrentPrice:  60,
		})
	}
	return holdings
}

func TestAssessRisk_Diversified(t *testing.T) {
	service := newTestService(t, broadHoldings())

	report := service.AssessRisk()

	// Ten equal positions: top weight 10%, HHI 0.10 (+1), five sectors,
	// no volatile names
	assert.Equal(t, 2.0, report.RiskScore)
	assert.Equal(t, "Low", report.RiskLevel)
	require.Len(t, report.Factors, 1)
	assert.Contains(t, report.Factors[0], "Some concentration by HHI")

	assert.Equal(t, 10.0, report.Inputs.TopPositionWeightPct)
	assert.Equal(t, 0.1, report.Inputs.HHI)
	assert.Equal(t, 10, report.Inputs.NumHoldings)
	assert.Equal(t, 5, report.Inputs.NumSectors)
}

func TestAssessRisk_VolatileNameFlag(t *testing.T) {
	holdings := broadHoldings()
	holdings = append(holdings, models.Holding{
		Ticker: "TSLA", Name: "Tesla Inc.", Sector: "Automotive", Quantity: 1, PurchasePrice: 200, CurrentPrice: 180,
	})
	service := newTestService(t, holdings)

	report := service.AssessRisk()
	assert.Contains(t, report.Factors, "Includes higher-volatility names (e.g., TSLA/NVDA).")
}

func TestAssessRisk_WatchListOverride(t *testing.T) {
	config := DefaultConfig()
	config.VolatileTickers = []string{"DIV0"}
	service := newTestServiceWithConfig(t, broadHoldings(), config)

	report := service.AssessRisk()
	assert.Contains(t, report.Factors, "Includes higher-volatility names (e.g., DIV0).")
}

func TestAssessRisk_ThresholdOverride(t *testing.T) {
	// Lowering the moderate top-weight cutoff turns a 10% position into a
	// triggered factor
	config := DefaultConfig()
	config.TopWeightModerate = 5.0
	service := newTestServiceWithConfig(t, broadHoldings(), config)

	report := service.AssessRisk()
	require.NotEmpty(t, report.Factors)
	assert.Contains(t, report.Factors[0], "Moderate single-position concentration (>=5%).")
}

func TestAssessRisk_LevelBanding(t *testing.T) {
	service := newTestService(t, nil)

	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "Low"},
		{4.9, "Low"},
		{5.0, "Moderate"},
		{7.9, "Moderate"},
		{8.0, "High"},
		{10.0, "High"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.riskLevel(tt.score), "score %.1f", tt.score)
	}
}

func TestAssessRisk_Empty(t *testing.T) {
	service := newTestService(t, nil)

	report := service.AssessRisk()

	// Zero sectors still counts as limited sector diversification; no
	// holding-count factor fires on an empty snapshot
	assert.Equal(t, 3.0, report.RiskScore)
	assert.Equal(t, "Low", report.RiskLevel)
	assert.Equal(t, 0, report.Inputs.NumHoldings)
	assert.Equal(t, 0, report.Inputs.NumSectors)
	assert.Equal(t, 0.0, report.Inputs.HHI)
}

func TestAssessRisk_Deterministic(t *testing.T) {
	service := newTestService(t, scenarioHoldings())

	first := service.AssessRisk()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, service.AssessRisk())
	}
}
