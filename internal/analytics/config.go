package analytics

import (
	"github.com/ternarybob/folio/internal/common"
)

// Config holds the fixed thresholds and watch-lists for the analytics
// engine. Callers pass it in explicitly so tests can override any cutoff.
type Config struct {
	// HHI thresholds (fractions, 0..1)
	HHIHigh     float64
	HHIElevated float64
	HHISome     float64

	// Single-position weight thresholds (percent)
	TopWeightVeryHigh float64
	TopWeightHigh     float64
	TopWeightModerate float64

	// Sector-count thresholds
	SectorsLimited int
	SectorsFew     int

	// Tickers historically subject to higher volatility (normalized)
	VolatileTickers []string

	// Holding-count floor below which idiosyncratic risk is flagged
	MinHoldings int

	// Risk level breakpoints (score out of 10)
	RiskHighScore     float64
	RiskModerateScore float64
}

// DefaultConfig returns the default analytics configuration
func DefaultConfig() Config {
	return Config{
		HHIHigh:           0.25,
		HHIElevated:       0.15,
		HHISome:           0.10,
		TopWeightVeryHigh: 40.0,
		TopWeightHigh:     25.0,
		TopWeightModerate: 15.0,
		SectorsLimited:    2,
		SectorsFew:        3,
		VolatileTickers:   []string{"TSLA", "NVDA"},
		MinHoldings:       4,
		RiskHighScore:     8.0,
		RiskModerateScore: 5.0,
	}
}

// ConfigFromApp maps the application-level analytics settings onto an
// engine configuration, normalizing the volatile ticker watch-list.
func ConfigFromApp(c common.AnalyticsConfig) Config {
	return Config{
		HHIHigh:           c.HHIHigh,
		HHIElevated:       c.HHIElevated,
		HHISome:           c.HHISome,
		TopWeightVeryHigh: c.TopWeightVeryHigh,
		TopWeightHigh:     c.TopWeightHigh,
		TopWeightModerate: c.TopWeightModerate,
		SectorsLimited:    c.SectorsLimited,
		SectorsFew:        c.SectorsFew,
		VolatileTickers:   common.NormalizeTickers(c.VolatileTickers),
		MinHoldings:       c.MinHoldings,
		RiskHighScore:     c.RiskHighScore,
		RiskModerateScore: c.RiskModerateScore,
	}
}
