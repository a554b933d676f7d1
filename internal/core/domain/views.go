package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyListing pairs a resolved effective rate with the display metadata
// of its global record. This is what the storefront currency list renders.
type CurrencyListing struct {
	Effective EffectiveRate `json:"effective"`
	Name      string        `json:"name"`
	Flag      string        `json:"flag"`
	IsPopular bool          `json:"isPopular"`
	SortOrder int           `json:"order"`
}

// RatePair is one row of the compact rates payload.
type RatePair struct {
	Buy  decimal.Decimal `json:"buy"`
	Sell decimal.Decimal `json:"sell"`
}

// RateSummary is the compact rates view: active currencies only, buy/sell
// per code, stamped with the snapshot time.
type RateSummary struct {
	BaseCurrency string              `json:"baseCurrency"`
	Rates        map[string]RatePair `json:"rates"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// Calculation is a fully resolved quote for a concrete conversion request.
type Calculation struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Amount       decimal.Decimal `json:"amount"`
	Direction    Direction       `json:"direction"`
	BranchID     *int64          `json:"branchId,omitempty"`
	Result       Quote           `json:"result"`
}

// SelectionMethod records which selector produced an auto-selected branch.
type SelectionMethod string

const (
	SelectionGeo      SelectionMethod = "geo"
	SelectionBestRate SelectionMethod = "best_rate"
	SelectionManual   SelectionMethod = "manual"
	SelectionNone     SelectionMethod = "none"
)

// BranchChoice is the outcome of an auto-selection pass.
type BranchChoice struct {
	Branch *Branch         `json:"branch,omitempty"`
	Method SelectionMethod `json:"method"`
}
