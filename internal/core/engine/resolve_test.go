package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
	"github.com/svitvalut/exchange_backend/internal/core/engine"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func i64(v int64) *int64 {
	return &v
}

func testRateTable() domain.RateTable {
	return domain.RateTable{
		"USD": {
			Code:               "USD",
			BuyRate:            d("42.0"),
			SellRate:           d("42.5"),
			WholesaleBuyRate:   d("42.3"),
			WholesaleSellRate:  d("42.4"),
			WholesaleThreshold: d("1000"),
			IsActive:           true,
		},
		"EUR": {
			Code:     "EUR",
			BuyRate:  d("45.5"),
			SellRate: d("45.9"),
			IsActive: true,
		},
	}
}

func TestResolve_NoOverrideInheritsGlobal(t *testing.T) {
	rates := testRateTable()

	tests := []struct {
		name      string
		branchID  *int64
		overrides domain.OverrideMap
	}{
		{name: "nil branch", branchID: nil, overrides: domain.OverrideMap{}},
		{name: "branch without override map entry", branchID: i64(3), overrides: domain.OverrideMap{}},
		{
			name:     "branch with overrides for other codes only",
			branchID: i64(3),
			overrides: domain.OverrideMap{
				3: {"EUR": {BranchID: 3, Code: "EUR", BuyRate: d("45.7"), IsActive: true}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			er := engine.Resolve("USD", tt.branchID, rates, tt.overrides)
			assert.True(t, er.IsActive)
			assert.False(t, er.Overridden)
			assert.True(t, er.BuyRate.Equal(d("42.0")))
			assert.True(t, er.SellRate.Equal(d("42.5")))
			assert.True(t, er.WholesaleBuyRate.Equal(d("42.3")))
			assert.True(t, er.WholesaleThreshold.Equal(d("1000")))
		})
	}
}

func TestResolve_FieldLevelFallback(t *testing.T) {
	// An override with buyRate unset but sellRate set must merge per field,
	// not per record.
	rates := domain.RateTable{
		"EUR": {
			Code:     "EUR",
			BuyRate:  d("42.0"),
			SellRate: d("42.5"),
			IsActive: true,
		},
	}
	overrides := domain.OverrideMap{
		7: {"EUR": {BranchID: 7, Code: "EUR", BuyRate: decimal.Zero, SellRate: d("45.5"), IsActive: true}},
	}

	er := engine.Resolve("EUR", i64(7), rates, overrides)

	assert.True(t, er.Overridden)
	assert.True(t, er.BuyRate.Equal(d("42.0")), "zero buy rate falls back to global")
	assert.True(t, er.SellRate.Equal(d("45.5")), "set sell rate wins")
}

func TestResolve_WholesaleFieldsFallBackIndependently(t *testing.T) {
	rates := testRateTable()
	overrides := domain.OverrideMap{
		2: {"USD": {
			BranchID:         2,
			Code:             "USD",
			BuyRate:          d("42.2"),
			WholesaleBuyRate: decimal.Zero, // inherit 42.3
			IsActive:         true,
		}},
	}

	er := engine.Resolve("USD", i64(2), rates, overrides)

	assert.True(t, er.BuyRate.Equal(d("42.2")))
	assert.True(t, er.SellRate.Equal(d("42.5")))
	assert.True(t, er.WholesaleBuyRate.Equal(d("42.3")))
	assert.True(t, er.WholesaleSellRate.Equal(d("42.4")))
	assert.True(t, er.WholesaleThreshold.Equal(d("1000")))
}

func TestResolve_ExplicitDisableWins(t *testing.T) {
	rates := testRateTable()
	overrides := domain.OverrideMap{
		5: {"USD": {
			BranchID: 5,
			Code:     "USD",
			BuyRate:  d("43.0"), // must NOT leak through
			IsActive: false,
		}},
	}

	er := engine.Resolve("USD", i64(5), rates, overrides)

	assert.False(t, er.IsActive)
	assert.True(t, er.Overridden)
	assert.True(t, er.BuyRate.IsZero())
	assert.True(t, er.SellRate.IsZero())
	assert.True(t, er.WholesaleBuyRate.IsZero())
	assert.True(t, er.WholesaleSellRate.IsZero())
}

func TestResolve_ThresholdDefaultsWhenUnsetEverywhere(t *testing.T) {
	rates := testRateTable()

	er := engine.Resolve("EUR", nil, rates, nil)

	require.True(t, er.IsActive)
	assert.True(t, er.WholesaleThreshold.Equal(domain.DefaultWholesaleThreshold))
}

func TestResolve_UnknownCurrencyIsUnavailable(t *testing.T) {
	er := engine.Resolve("XAU", i64(1), testRateTable(), domain.OverrideMap{})

	assert.False(t, er.IsActive)
	assert.True(t, er.BuyRate.IsZero())
	assert.True(t, er.SellRate.IsZero())
}

func TestResolve_NormalizesCode(t *testing.T) {
	er := engine.Resolve(" usd ", nil, testRateTable(), nil)

	assert.Equal(t, "USD", er.Code)
	assert.True(t, er.IsActive)
}

func TestResolve_Idempotent(t *testing.T) {
	rates := testRateTable()
	overrides := domain.OverrideMap{
		2: {"USD": {BranchID: 2, Code: "USD", BuyRate: d("42.2"), IsActive: true}},
	}

	first := engine.Resolve("USD", i64(2), rates, overrides)
	second := engine.Resolve("USD", i64(2), rates, overrides)

	assert.Equal(t, first, second)
}
