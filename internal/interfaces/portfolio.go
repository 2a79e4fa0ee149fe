package interfaces

import (
	"github.com/ternarybob/folio/internal/models"
)

// HoldingSource provides read-only access to a loaded portfolio snapshot.
// The snapshot is immutable after load, so implementations require no
// locking for concurrent readers.
type HoldingSource interface {
	// All returns every holding in stable load order
	All() []models.Holding

	// Get returns the holding whose ticker matches case-insensitively,
	// or an error wrapping models.ErrNotFound
	Get(ticker string) (models.Holding, error)

	// IsEmpty reports whether the snapshot has zero holdings
	IsEmpty() bool

	// Count returns the number of holdings in the snapshot
	Count() int
}

// AnalyticsService computes derived metrics over a holding source.
// Every operation is a pure, stateless read - identical store contents
// produce identical results.
type AnalyticsService interface {
	AllHoldings() models.HoldingsReport
	HoldingByTicker(ticker string) (models.HoldingMetrics, error)
	Summary() models.PortfolioSummary
	AssessDiversification() models.DiversificationReport
	AssessRisk() models.RiskReport
}
