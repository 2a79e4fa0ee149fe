package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/folio/internal/models"
)

func TestAssessDiversification_Scenario(t *testing.T) {
	service := newTestService(t, scenarioHoldings())

	report := service.AssessDiversification()

	assert.Equal(t, 2, report.NumHoldings)
	assert.Equal(t, 66.0, report.TopPositionWeight)
	assert.Equal(t, 0.5514, report.HHI)

	require.Len(t, report.PositionWeights, 2)
	assert.Equal(t, "AAPL", report.PositionWeights[0].Ticker)
	assert.Equal(t, 66.0, report.PositionWeights[0].WeightPct)
	assert.Equal(t, "TSLA", report.PositionWeights[1].Ticker)
	assert.Equal(t, 34.0, report.PositionWeights[1].WeightPct)

	assert.Equal(t, 66.0, report.SectorWeights["Technology"])
	assert.Equal(t, 34.0, report.SectorWeights["Automotive"])

	assert.Contains(t, report.Notes, "Elevated overall concentration by HHI.")
	assert.Contains(t, report.Notes, "High single-position concentration")
	assert.Contains(t, report.Notes, "Limited sector diversification")
}

func TestAssessDiversification_WeightsSumToHundred(t *testing.T) {
	holdings := []models.Holding{}
	for i := 0; i < 7; i++ {
		holdings = append(holdings, models.Holding{
			Ticker:        fmt.Sprintf("T%d", i),
			Name:          fmt.Sprintf("Company %d", i),
			Sector:        fmt.Sprintf("Sector %d", i%3),
			Quantity:      float64(i + 1),
			PurchasePrice: 10,
			CurrentPrice:  float64(10 + i*7),
		})
	}
	service := newTestService(t, holdings)

	report := service.AssessDiversification()

	sum := 0.0
	for _, pw := range report.PositionWeights {
		sum += pw.WeightPct
	}
	// Each rounded weight can contribute up to 0.05 of drift
	assert.InDelta(t, 100.0, sum, 0.1*float64(len(holdings)))

	sectorSum := 0.0
	for _, w := range report.SectorWeights {
		sectorSum += w
	}
	assert.InDelta(t, 100.0, sectorSum, 0.1*float64(len(report.SectorWeights)))
}

func TestAssessDiversification_HHIBounds(t *testing.T) {
	// n equally weighted holdings: hhi == 1/n
	for _, n := range []int{2, 4, 5, 10} {
		holdings := []models.Holding{}
		for i := 0; i < n; i++ {
			holdings = append(holdings, models.Holding{
				Ticker:        fmt.Sprintf("EQ%d", i),
				Name:          fmt.Sprintf("Equal %d", i),
				Sector:        "Broad",
				Quantity:      10,
				PurchasePrice: 5,
				CurrentPrice:  20,
			})
		}
		service := newTestService(t, holdings)

		report := service.AssessDiversification()
		assert.InDelta(t, 1.0/float64(n), report.HHI, 0.0001, "n=%d", n)
	}
}

func TestAssessDiversification_SingleHolding(t *testing.T) {
	service := newTestService(t, []models.Holding{
		{Ticker: "ONLY", Name: "Only Corp", Sector: "Solo", Quantity: 10, PurchasePrice: 5, CurrentPrice: 20},
	})

	report := service.AssessDiversification()
	assert.Equal(t, 1.0, report.HHI)
	assert.Equal(t, 100.0, report.TopPositionWeight)
}

func TestAssessDiversification_SortOrderAndTies(t *testing.T) {
	// ZZZ and AAA carry identical value; the tie breaks ticker ascending
	service := newTestService(t, []models.Holding{
		{Ticker: "ZZZ", Name: "Z Corp", Sector: "One", Quantity: 10, PurchasePrice: 1, CurrentPrice: 10},
		{Ticker: "MID", Name: "M Corp", Sector: "One", Quantity: 10, PurchasePrice: 1, CurrentPrice: 30},
		{Ticker: "AAA", Name: "A Corp", Sector: "Two", Quantity: 10, PurchasePrice: 1, CurrentPrice: 10},
	})

	report := service.AssessDiversification()
	require.Len(t, report.PositionWeights, 3)
	assert.Equal(t, "MID", report.PositionWeights[0].Ticker)
	assert.Equal(t, "AAA", report.PositionWeights[1].Ticker)
	assert.Equal(t, "ZZZ", report.PositionWeights[2].Ticker)
}

func TestAssessDiversification_SectorGroupingCaseSensitive(t *testing.T) {
	// Sector keys group on the exact stored string
	service := newTestService(t, []models.Holding{
		{Ticker: "A", Name: "A Corp", Sector: "Tech", Quantity: 10, PurchasePrice: 1, CurrentPrice: 10},
		{Ticker: "B", Name: "B Corp", Sector: "tech", Quantity: 10, PurchasePrice: 1, CurrentPrice: 10},
	})

	report := service.AssessDiversification()
	assert.Len(t, report.SectorWeights, 2)
	assert.Equal(t, 50.0, report.SectorWeights["Tech"])
	assert.Equal(t, 50.0, report.SectorWeights["tech"])
}

func TestAssessDiversification_Empty(t *testing.T) {
	service := newTestService(t, nil)

	report := service.AssessDiversification()
	assert.Equal(t, 0.0, report.HHI)
	assert.Equal(t, 0.0, report.TopPositionWeight)
	assert.Empty(t, report.SectorWeights)
	assert.Empty(t, report.PositionWeights)
	assert.Equal(t, 0, report.NumHoldings)
	assert.Equal(t, "No holdings found.", report.Notes)
}

func TestAssessDiversification_WorthlessPortfolio(t *testing.T) {
	// All positions valued at zero: total value is zero and no division
	// may happen
	service := newTestService(t, []models.Holding{
		{Ticker: "DEAD", Name: "Defunct Corp", Sector: "Misc", Quantity: 100, PurchasePrice: 10, CurrentPrice: 0},
		{Ticker: "GONE", Name: "Gone Ltd", Sector: "Misc", Quantity: 50, PurchasePrice: 5, CurrentPrice: 0},
	})

	report := service.AssessDiversification()
	assert.Equal(t, 0.0, report.HHI)
	assert.Equal(t, 0.0, report.TopPositionWeight)
	assert.Equal(t, 2, report.NumHoldings)
	for _, pw := range report.PositionWeights {
		assert.Equal(t, 0.0, pw.WeightPct)
	}
}
