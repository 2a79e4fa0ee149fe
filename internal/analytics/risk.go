package analytics

import (
	"fmt"
	"strings"

	"github.com/ternarybob/folio/internal/common"
	"github.com/ternarybob/folio/internal/models"
)

// AssessRisk scores the portfolio 1-10 (higher = riskier) from the
// diversification metrics plus a static higher-volatility watch-list.
// The mapping is deterministic and stateless: the same snapshot always
// produces the same score, level and factors.
func (s *Service) AssessRisk() models.RiskReport {
	div := s.AssessDiversification()
	topWeight := div.TopPositionWeight
	hhi := div.HHI
	numHoldings := div.NumHoldings
	numSectors := len(div.SectorWeights)

	score := 1.0
	factors := []string{}

	// Top position concentration
	switch {
	case topWeight >= s.config.TopWeightVeryHigh:
		score += 4
		factors = append(factors, fmt.Sprintf("Very high single-position concentration (>=%.0f%%).", s.config.TopWeightVeryHigh))
	case topWeight >= s.config.TopWeightHigh:
		score += 2
		factors = append(factors, fmt.Sprintf("High single-position concentration (>=%.0f%%).", s.config.TopWeightHigh))
	case topWeight >= s.config.TopWeightModerate:
		score += 1
		factors = append(factors, fmt.Sprintf("Moderate single-position concentration (>=%.0f%%).", s.config.TopWeightModerate))
	}

	// HHI concentration
	switch {
	case hhi >= s.config.HHIHigh:
		score += 3
		factors = append(factors, fmt.Sprintf("High overall concentration by HHI (>=%.2f).", s.config.HHIHigh))
	case hhi >= s.config.HHIElevated:
		score += 2
		factors = append(factors, fmt.Sprintf("Elevated concentration by HHI (>=%.2f).", s.config.HHIElevated))
	case hhi >= s.config.HHISome:
		score += 1
		factors = append(factors, fmt.Sprintf("Some concentration by HHI (>=%.2f).", s.config.HHISome))
	}

	// Sector concentration
	switch {
	case numSectors <= s.config.SectorsLimited:
		score += 2
		factors = append(factors, fmt.Sprintf("Limited sector diversification (<=%d sectors).", s.config.SectorsLimited))
	case numSectors <= s.config.SectorsFew:
		score += 1
		factors = append(factors, fmt.Sprintf("Concentrated across few sectors (<=%d sectors).", s.config.SectorsFew))
	}

	// Higher-volatility names
	if s.holdsVolatileNames() {
		score += 1
		factors = append(factors, fmt.Sprintf("Includes higher-volatility names (e.g., %s).", strings.Join(s.config.VolatileTickers, "/")))
	}

	// Number of holdings
	if numHoldings > 0 && numHoldings <= s.config.MinHoldings {
		score += 1
		factors = append(factors, fmt.Sprintf("Few holdings (<=%d) increases idiosyncratic risk.", s.config.MinHoldings))
	}

	score = clamp(score, 1.0, 10.0)
	level := s.riskLevel(score)

	s.logger.Debug().
		Float64("score", score).
		Str("level", level).
		Int("factors", len(factors)).
		Msg("Risk assessment computed")

	return models.RiskReport{
		RiskScore: round(score, 1),
		RiskLevel: level,
		Factors:   factors,
		Inputs: models.RiskInputs{
			TopPositionWeightPct: topWeight,
			HHI:                  hhi,
			NumHoldings:          numHoldings,
			NumSectors:           numSectors,
		},
	}
}

// holdsVolatileNames reports whether any watch-listed ticker is present
// in the snapshot.
func (s *Service) holdsVolatileNames() bool {
	if len(s.config.VolatileTickers) == 0 {
		return false
	}
	held := make(map[string]bool)
	for _, h := range s.source.All() {
		held[common.NormalizeTicker(h.Ticker)] = true
	}
	for _, ticker := range s.config.VolatileTickers {
		if held[common.NormalizeTicker(ticker)] {
			return true
		}
	}
	return false
}

// riskLevel bands a score into Low / Moderate / High
func (s *Service) riskLevel(score float64) string {
	switch {
	case score >= s.config.RiskHighScore:
		return "High"
	case score >= s.config.RiskModerateScore:
		return "Moderate"
	default:
		return "Low"
	}
}
