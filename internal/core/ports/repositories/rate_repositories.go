package repositories

import (
	"context"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// CurrencyRateReader defines read operations for the global rate dataset.
type CurrencyRateReader interface {
	// ListCurrencyRates retrieves every global currency record, including
	// inactive ones, ordered for display.
	ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// FindCurrencyRateByCode retrieves a single global currency record.
	FindCurrencyRateByCode(ctx context.Context, code string) (*domain.CurrencyRate, error)
}

// BranchRateReader defines read operations for branch-level rate overrides.
type BranchRateReader interface {
	// ListBranchRates retrieves every branch override row.
	ListBranchRates(ctx context.Context) ([]domain.BranchRate, error)
}

// CrossRateReader defines read operations for directly quoted cross pairs.
type CrossRateReader interface {
	// ListCrossRates retrieves the stored cross-rate table.
	ListCrossRates(ctx context.Context) ([]domain.CrossRate, error)
}

// SettingsReader defines read operations for the site settings record.
type SettingsReader interface {
	// GetSiteSettings retrieves the singleton settings row.
	GetSiteSettings(ctx context.Context) (*domain.SiteSettings, error)
}

// RateRepositoryFacade combines every read-side repository the rate snapshot
// is assembled from.
type RateRepositoryFacade interface {
	CurrencyRateReader
	BranchRateReader
	CrossRateReader
	SettingsReader
}
