// Package store holds the immutable in-memory portfolio snapshot.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ternarybob/folio/internal/common"
	"github.com/ternarybob/folio/internal/interfaces"
	"github.com/ternarybob/folio/internal/models"
)

// Snapshot is an immutable collection of holdings loaded at process start.
// It is never mutated after construction, so concurrent readers need no
// coordination.
type Snapshot struct {
	id       string
	loadedAt time.Time
	holdings []models.Holding
	byTicker map[string]int // normalized ticker -> index into holdings
}

// Compile-time assertion
var _ interfaces.HoldingSource = (*Snapshot)(nil)

// NewSnapshot constructs a snapshot from raw holdings. Each holding is
// validated and tickers must be unique case-insensitively; load order is
// preserved for display.
func NewSnapshot(holdings []models.Holding) (*Snapshot, error) {
	s := &Snapshot{
		id:       uuid.New().String(),
		loadedAt: time.Now(),
		holdings: make([]models.Holding, len(holdings)),
		byTicker: make(map[string]int, len(holdings)),
	}
	copy(s.holdings, holdings)

	for i := range s.holdings {
		h := &s.holdings[i]
		if err := h.Validate(); err != nil {
			return nil, err
		}
		key := common.NormalizeTicker(h.Ticker)
		if _, exists := s.byTicker[key]; exists {
			return nil, fmt.Errorf("duplicate ticker %q in portfolio", key)
		}
		s.byTicker[key] = i
	}

	return s, nil
}

// ID returns the unique identifier assigned to this snapshot at load time
func (s *Snapshot) ID() string {
	return s.id
}

// LoadedAt returns the time the snapshot was constructed
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// All returns every holding in stable load order. The returned slice is a
// copy - callers cannot mutate the snapshot through it.
func (s *Snapshot) All() []models.Holding {
	out := make([]models.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// Get returns the holding whose ticker matches case-insensitively,
// ignoring surrounding whitespace. At most one match is possible because
// tickers are unique within the snapshot.
func (s *Snapshot) Get(ticker string) (models.Holding, error) {
	key := common.NormalizeTicker(ticker)
	if key == "" {
		return models.Holding{}, models.InvalidArgumentError("ticker must not be empty")
	}
	idx, ok := s.byTicker[key]
	if !ok {
		return models.Holding{}, models.NotFoundError(key)
	}
	return s.holdings[idx], nil
}

// IsEmpty reports whether the snapshot has zero holdings
func (s *Snapshot) IsEmpty() bool {
	return len(s.holdings) == 0
}

// Count returns the number of holdings in the snapshot
func (s *Snapshot) Count() int {
	return len(s.holdings)
}
