package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Holding represents a single portfolio position
type Holding struct {
	// Identification
	Ticker string `json:"ticker" yaml:"ticker" validate:"required"`
	Name   string `json:"name" yaml:"name" validate:"required"`

	// Classification
	Sector string `json:"sector" yaml:"sector"`

	// Position
	Quantity      float64 `json:"quantity" yaml:"quantity" validate:"gt=0"`
	PurchasePrice float64 `json:"purchase_price" yaml:"purchase_price" validate:"gt=0"`
	CurrentPrice  float64 `json:"current_price" yaml:"current_price" validate:"gte=0"`
}

// Validate validates the holding using go-playground/validator.
// A zero current price is allowed to model a worthless security.
func (h *Holding) Validate() error {
	validate := validator.New()
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("invalid holding %q: %w", h.Ticker, err)
	}
	return nil
}

// CurrentValue returns the market value of the position
func (h *Holding) CurrentValue() float64 {
	return h.Quantity * h.CurrentPrice
}

// CostBasis returns the total acquisition cost of the position
func (h *Holding) CostBasis() float64 {
	return h.Quantity * h.PurchasePrice
}
