package services

import (
	"context"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// RateReaderSvc defines read operations over the resolved rate dataset.
type RateReaderSvc interface {
	// Snapshot returns the current rate snapshot, preferring the database
	// and falling back to cached data when the database is unreachable.
	Snapshot(ctx context.Context) (*domain.RateSnapshot, error)

	// ListCurrencies returns the merged currency listing for a branch
	// (global rates when branchID is nil). Explicitly disabled currencies
	// are omitted.
	ListCurrencies(ctx context.Context, branchID *int64) ([]domain.CurrencyListing, error)

	// RateSummary returns the compact active-currency buy/sell view.
	RateSummary(ctx context.Context, branchID *int64) (*domain.RateSummary, error)

	// ListCrossRates returns the active cross pairs ordered for display.
	ListCrossRates(ctx context.Context) ([]domain.CrossRate, error)
}

// RateSvcFacade combines all rate-related service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}
