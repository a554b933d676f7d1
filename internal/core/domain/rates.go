package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultWholesaleThreshold is the configured minimum amount of foreign
// currency above which the wholesale tier applies, used when neither the
// branch override nor the global record carries a threshold.
var DefaultWholesaleThreshold = decimal.NewFromInt(1000)

// Direction describes a trade from the customer's point of view.
type Direction string

const (
	// SellForeign: the customer sells foreign currency, the business buys it.
	// The amount is denominated in foreign currency.
	SellForeign Direction = "SELL_FOREIGN"
	// BuyForeign: the customer buys foreign currency, the business sells it.
	// The amount is denominated in the domestic currency.
	BuyForeign Direction = "BUY_FOREIGN"
	// CrossPair: neither side of the trade is the domestic currency.
	CrossPair Direction = "CROSS_PAIR"
)

// Tier identifies which rate tier produced a quote.
type Tier string

const (
	TierRetail    Tier = "retail"
	TierWholesale Tier = "wholesale"
)

// CurrencyRate holds the tradeable terms for one currency code at one scope
// (global, or branch-specific when used as an override).
//
// A rate of exactly zero means "unset", never "free": zero fields of an
// override fall back to the global record, and a zero effective rate quotes
// as unavailable. Use IsSet on the relevant field rather than comparing
// against decimal.Zero directly.
type CurrencyRate struct {
	Code               string          `json:"code"` // 3-letter ISO code, e.g. "USD"
	Name               string          `json:"name"`
	Flag               string          `json:"flag"`
	BuyRate            decimal.Decimal `json:"buyRate"`  // what the business pays per unit foreign
	SellRate           decimal.Decimal `json:"sellRate"` // what the business charges per unit foreign
	WholesaleBuyRate   decimal.Decimal `json:"wholesaleBuyRate"`
	WholesaleSellRate  decimal.Decimal `json:"wholesaleSellRate"`
	WholesaleThreshold decimal.Decimal `json:"wholesaleThreshold"` // in foreign-currency units
	IsActive           bool            `json:"isActive"`
	IsPopular          bool            `json:"isPopular"`
	SortOrder          int             `json:"order"`
}

// IsSet reports whether d carries a usable rate. Zero and negative values
// are sentinels for "no data".
func IsSet(d decimal.Decimal) bool {
	return d.IsPositive()
}

// BranchRate is a CurrencyRate scoped to a single branch. Its presence for a
// (branch, code) pair signals an explicit branch-level decision, even when it
// only disables the currency; absence means "inherit the global rate".
type BranchRate struct {
	BranchID           int64           `json:"branchId"`
	Code               string          `json:"code"`
	BuyRate            decimal.Decimal `json:"buyRate"`
	SellRate           decimal.Decimal `json:"sellRate"`
	WholesaleBuyRate   decimal.Decimal `json:"wholesaleBuyRate"`
	WholesaleSellRate  decimal.Decimal `json:"wholesaleSellRate"`
	WholesaleThreshold decimal.Decimal `json:"wholesaleThreshold"`
	IsActive           bool            `json:"isActive"`
}

// CrossRate is a directly quoted rate for an ordered non-domestic pair,
// keyed as "BASE/QUOTE" in the cross-rate table.
type CrossRate struct {
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	BuyRate       decimal.Decimal `json:"buyRate"`
	SellRate      decimal.Decimal `json:"sellRate"`
	IsActive      bool            `json:"isActive"`
	SortOrder     int             `json:"order"`
}

// PairKey returns the "BASE/QUOTE" key for the cross-rate table.
func (c CrossRate) PairKey() string {
	return c.BaseCurrency + "/" + c.QuoteCurrency
}

// RateTable is the in-memory global rate dataset, keyed by currency code.
type RateTable map[string]CurrencyRate

// OverrideMap holds per-branch rate overrides, keyed by branch id and then
// currency code.
type OverrideMap map[int64]map[string]BranchRate

// CrossTable holds directly quoted cross pairs keyed by "BASE/QUOTE".
type CrossTable map[string]CrossRate

// EffectiveRate is the fully resolved rate for a (branch-or-none, currency)
// pair after merging the global record with any branch override. It is
// ephemeral: recomputed on every relevant input change and never persisted.
type EffectiveRate struct {
	Code               string          `json:"code"`
	BranchID           *int64          `json:"branchId,omitempty"` // nil for the global scope
	BuyRate            decimal.Decimal `json:"buyRate"`
	SellRate           decimal.Decimal `json:"sellRate"`
	WholesaleBuyRate   decimal.Decimal `json:"wholesaleBuyRate"`
	WholesaleSellRate  decimal.Decimal `json:"wholesaleSellRate"`
	WholesaleThreshold decimal.Decimal `json:"wholesaleThreshold"`
	IsActive           bool            `json:"isActive"`
	Overridden         bool            `json:"overridden"` // true when a branch override contributed
}

// Quote is the result of applying an amount and direction to an
// EffectiveRate. Amounts are full-precision decimals; rounding is a
// presentation concern.
type Quote struct {
	CounterAmount decimal.Decimal `json:"counterAmount"`
	RateUsed      decimal.Decimal `json:"rateUsed"`
	TierUsed      Tier            `json:"tierUsed"`
	// Synthetic marks a cross quote approximated through the domestic
	// currency rather than read from the cross-rate table.
	Synthetic bool `json:"synthetic"`
}

// RateSnapshot bundles everything the engine reads for one computation pass:
// an immutable-for-the-tick view of the backend dataset.
type RateSnapshot struct {
	Rates     RateTable   `json:"rates"`
	Overrides OverrideMap `json:"overrides"`
	Cross     CrossTable  `json:"cross"`
	Branches  []Branch    `json:"branches"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
