package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExchangeRoute is a read-only snapshot of one backend exchange pair.
// For a given (From, To) pair at most one active route exists.
type ExchangeRoute struct {
	ID        string          `json:"id"`
	From      Currency        `json:"fromCurrency"`
	To        Currency        `json:"toCurrency"`
	Rate      decimal.Decimal `json:"rate"`
	MinAmount decimal.Decimal `json:"minAmount"`
	MaxAmount decimal.Decimal `json:"maxAmount"`
	Reserve   decimal.Decimal `json:"reserve"`
	IsActive  bool            `json:"isActive"`
}

// CheckStructure reports whether the route is structurally sound enough to
// quote against. Unsupported pairs and out-of-range amounts are validation
// verdicts, not structural defects; this only guards truly malformed data.
func (r ExchangeRoute) CheckStructure() error {
	if !r.Rate.IsPositive() {
		return fmt.Errorf("route %q: %w: non-positive rate %s", r.ID, ErrMalformedRoute, r.Rate)
	}
	if r.MinAmount.IsNegative() || r.MaxAmount.IsNegative() {
		return fmt.Errorf("route %q: %w: negative amount bound", r.ID, ErrMalformedRoute)
	}
	if r.MinAmount.GreaterThan(r.MaxAmount) {
		return fmt.Errorf("route %q: %w: min %s exceeds max %s", r.ID, ErrMalformedRoute, r.MinAmount, r.MaxAmount)
	}
	if r.Reserve.IsNegative() {
		return fmt.Errorf("route %q: %w: negative reserve %s", r.ID, ErrMalformedRoute, r.Reserve)
	}
	return nil
}
