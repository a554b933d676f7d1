package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// QuoteSvc turns conversion requests into fully resolved calculations.
type QuoteSvc interface {
	// Calculate quotes a conversion of amount from one currency to another.
	// The trade direction is inferred from which side is the domestic
	// currency; pairs with no domestic side are quoted as cross pairs.
	// Unknown or unavailable currencies yield a zero-counter calculation,
	// never an error; only malformed input fails validation.
	Calculate(ctx context.Context, from, to string, amount decimal.Decimal, branchID *int64) (*domain.Calculation, error)
}

// QuoteSvcFacade combines all quote-related service interfaces.
type QuoteSvcFacade interface {
	QuoteSvc
}
