package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/folio/internal/models"
)

// AssessDiversification computes sector weights, per-position weights and
// concentration metrics for the current snapshot. A zero total portfolio
// value is special-cased before any division, so the operation never
// fails on an empty or worthless portfolio.
func (s *Service) AssessDiversification() models.DiversificationReport {
	holdings := s.source.All()
	if len(holdings) == 0 {
		return models.DiversificationReport{
			SectorWeights:     map[string]float64{},
			PositionWeights:   []models.PositionWeight{},
			HHI:               0,
			TopPositionWeight: 0,
			NumHoldings:       0,
			Notes:             "No holdings found.",
		}
	}

	values := make([]float64, len(holdings))
	total := 0.0
	for i, h := range holdings {
		values[i] = h.CurrentValue()
		total += values[i]
	}

	// Weight fractions. When every position is worthless the total is
	// zero and all weights are reported as zero rather than dividing.
	fractions := make([]float64, len(holdings))
	if total > 0 {
		for i, v := range values {
			fractions[i] = v / total
		}
	}

	positionWeights := make([]models.PositionWeight, len(holdings))
	for i, h := range holdings {
		positionWeights[i] = models.PositionWeight{
			Ticker:    h.Ticker,
			Name:      h.Name,
			WeightPct: round(fractions[i]*100, 1),
		}
	}
	sort.SliceStable(positionWeights, func(i, j int) bool {
		if positionWeights[i].WeightPct != positionWeights[j].WeightPct {
			return positionWeights[i].WeightPct > positionWeights[j].WeightPct
		}
		return positionWeights[i].Ticker < positionWeights[j].Ticker
	})

	// Sector grouping keys on the exact stored sector string.
	sectorTotals := make(map[string]float64)
	for i, h := range holdings {
		sectorTotals[h.Sector] += fractions[i]
	}
	sectorWeights := make(map[string]float64, len(sectorTotals))
	for sector, fraction := range sectorTotals {
		sectorWeights[sector] = round(fraction*100, 1)
	}

	hhi := 0.0
	topFraction := 0.0
	for _, f := range fractions {
		hhi += f * f
		if f > topFraction {
			topFraction = f
		}
	}
	hhi = round(hhi, 4)
	topWeight := round(topFraction*100, 1)

	return models.DiversificationReport{
		SectorWeights:     sectorWeights,
		PositionWeights:   positionWeights,
		HHI:               hhi,
		TopPositionWeight: topWeight,
		NumHoldings:       len(holdings),
		Notes:             s.diversificationNotes(topWeight, hhi, len(sectorWeights)),
	}
}

// diversificationNotes builds the qualitative interpretation from the
// configured thresholds.
func (s *Service) diversificationNotes(topWeight, hhi float64, numSectors int) string {
	var notes []string
	if topWeight >= s.config.TopWeightHigh {
		notes = append(notes, fmt.Sprintf("High single-position concentration (top holding >= %.0f%%).", s.config.TopWeightHigh))
	}
	if hhi >= s.config.HHIElevated {
		notes = append(notes, "Elevated overall concentration by HHI.")
	}
	if numSectors <= s.config.SectorsLimited {
		notes = append(notes, "Limited sector diversification.")
	}
	if len(notes) == 0 {
		notes = append(notes, "Diversification appears reasonable across holdings and sectors.")
	}
	return strings.Join(notes, " ")
}
