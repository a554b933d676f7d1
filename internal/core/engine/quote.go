package engine

import (
	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

var one = decimal.NewFromInt(1)

// Quote applies an amount and a direction to an effective rate.
//
// For SellForeign the amount is in foreign currency; the wholesale buy rate
// applies once the amount meets the threshold, and the counter-amount is the
// domestic sum paid out. For BuyForeign the amount is in domestic currency;
// the foreign amount is first estimated with the retail sell rate and the
// threshold re-tested against that estimate before the wholesale sell rate
// is applied (the threshold is defined in foreign units even though the
// customer typed a domestic sum).
//
// Unset rates produce a zero counter-amount, never a division error. The
// returned amounts are full-precision; rounding is a presentation concern.
// Cross pairs are handled by CrossQuote.
func Quote(er domain.EffectiveRate, amount decimal.Decimal, direction domain.Direction) domain.Quote {
	switch direction {
	case domain.SellForeign:
		return quoteSellForeign(er, amount)
	case domain.BuyForeign:
		return quoteBuyForeign(er, amount)
	default:
		return domain.Quote{TierUsed: domain.TierRetail}
	}
}

func quoteSellForeign(er domain.EffectiveRate, amount decimal.Decimal) domain.Quote {
	rate := er.BuyRate
	tier := domain.TierRetail
	if domain.IsSet(er.WholesaleBuyRate) && amount.GreaterThanOrEqual(er.WholesaleThreshold) {
		rate = er.WholesaleBuyRate
		tier = domain.TierWholesale
	}
	if !domain.IsSet(rate) {
		return domain.Quote{TierUsed: domain.TierRetail}
	}
	return domain.Quote{
		CounterAmount: amount.Mul(rate),
		RateUsed:      rate,
		TierUsed:      tier,
	}
}

func quoteBuyForeign(er domain.EffectiveRate, amount decimal.Decimal) domain.Quote {
	if !domain.IsSet(er.SellRate) {
		return domain.Quote{TierUsed: domain.TierRetail}
	}

	rate := er.SellRate
	tier := domain.TierRetail

	// First pass: estimate the foreign amount at the retail rate, then
	// re-test the threshold against that estimate.
	estimated := amount.Div(guard(rate))
	if domain.IsSet(er.WholesaleSellRate) && estimated.GreaterThanOrEqual(er.WholesaleThreshold) {
		rate = er.WholesaleSellRate
		tier = domain.TierWholesale
	}

	return domain.Quote{
		CounterAmount: amount.Div(guard(rate)),
		RateUsed:      rate,
		TierUsed:      tier,
	}
}

// CrossQuote prices a trade between two non-domestic currencies. A directly
// quoted pair from the cross table wins; otherwise the rate is synthesized
// through the domestic currency as base.buy / quote.sell and the result is
// flagged Synthetic. It never fails for an unknown pair: unset rates simply
// yield a zero counter-amount.
func CrossQuote(base, quote domain.EffectiveRate, cross domain.CrossTable, amount decimal.Decimal) domain.Quote {
	if cr, ok := cross[base.Code+"/"+quote.Code]; ok && cr.IsActive && domain.IsSet(cr.BuyRate) {
		return domain.Quote{
			CounterAmount: amount.Mul(cr.BuyRate),
			RateUsed:      cr.BuyRate,
			TierUsed:      domain.TierRetail,
		}
	}

	if !domain.IsSet(base.BuyRate) {
		return domain.Quote{TierUsed: domain.TierRetail, Synthetic: true}
	}
	rate := base.BuyRate.Div(guard(quote.SellRate))
	return domain.Quote{
		CounterAmount: amount.Mul(rate),
		RateUsed:      rate,
		TierUsed:      domain.TierRetail,
		Synthetic:     true,
	}
}

// guard substitutes 1 for an unset denominator so a zero rate degrades to a
// zero-ish quote instead of a division panic.
func guard(d decimal.Decimal) decimal.Decimal {
	if domain.IsSet(d) {
		return d
	}
	return one
}
