package engine

import (
	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// Resolve merges the global rate table with any branch override into the
// effective rate for (branchID, code).
//
// The merge is field-level, not record-level: each of buy, sell, wholesale
// buy, wholesale sell and the wholesale threshold falls back independently
// to the global value when unset in the override. An override that disables
// the currency (IsActive=false) always wins and is never backfilled from
// global data. A nil branchID, a missing override entry, or a missing
// branch in the override map all mean "inherit the global rate verbatim".
//
// Resolve is total and deterministic: it never errors, and identical inputs
// produce identical results.
func Resolve(code string, branchID *int64, rates domain.RateTable, overrides domain.OverrideMap) domain.EffectiveRate {
	code = domain.NormalizeCurrencyCode(code)

	global, ok := rates[code]
	if !ok {
		// Unknown currency: report unavailable rather than erroring.
		return domain.EffectiveRate{
			Code:               code,
			BranchID:           branchID,
			WholesaleThreshold: domain.DefaultWholesaleThreshold,
		}
	}

	er := domain.EffectiveRate{
		Code:               code,
		BranchID:           branchID,
		BuyRate:            global.BuyRate,
		SellRate:           global.SellRate,
		WholesaleBuyRate:   global.WholesaleBuyRate,
		WholesaleSellRate:  global.WholesaleSellRate,
		WholesaleThreshold: fallbackThreshold(global.WholesaleThreshold, decimal.Zero),
		IsActive:           global.IsActive,
	}

	if branchID == nil {
		return er
	}
	branchRates, ok := overrides[*branchID]
	if !ok {
		return er
	}
	ov, ok := branchRates[code]
	if !ok {
		return er
	}

	er.Overridden = true

	if !ov.IsActive {
		// Explicit branch-level disable: currency is not offered here,
		// regardless of global data.
		er.BuyRate = decimal.Zero
		er.SellRate = decimal.Zero
		er.WholesaleBuyRate = decimal.Zero
		er.WholesaleSellRate = decimal.Zero
		er.IsActive = false
		return er
	}

	er.BuyRate = fallbackRate(ov.BuyRate, global.BuyRate)
	er.SellRate = fallbackRate(ov.SellRate, global.SellRate)
	er.WholesaleBuyRate = fallbackRate(ov.WholesaleBuyRate, global.WholesaleBuyRate)
	er.WholesaleSellRate = fallbackRate(ov.WholesaleSellRate, global.WholesaleSellRate)
	er.WholesaleThreshold = fallbackThreshold(ov.WholesaleThreshold, global.WholesaleThreshold)
	return er
}

// fallbackRate returns the override value when set, otherwise the global one.
func fallbackRate(override, global decimal.Decimal) decimal.Decimal {
	if domain.IsSet(override) {
		return override
	}
	return global
}

// fallbackThreshold resolves the wholesale threshold: override, then global,
// then the configured default. Unlike rates, a threshold always ends up
// positive so the wholesale tier test stays meaningful.
func fallbackThreshold(override, global decimal.Decimal) decimal.Decimal {
	if domain.IsSet(override) {
		return override
	}
	if domain.IsSet(global) {
		return global
	}
	return domain.DefaultWholesaleThreshold
}
