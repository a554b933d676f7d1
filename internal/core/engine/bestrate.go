package engine

import (
	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// BestRateBranch scans every branch's effective rate for code and picks the
// one most favorable to the customer: the highest buy rate when the customer
// sells foreign currency, the lowest sell rate when the customer buys it.
//
// Branches where the currency is unavailable — resolved inactive, or with no
// positive rate on the relevant side — are excluded from the comparison
// entirely rather than sorting as equal to everything else. Ties keep input
// order. Returns nil when no branch offers the currency at all; callers must
// surface that as unavailability, not silently pick a default branch.
func BestRateBranch(code string, direction domain.Direction, branches []domain.Branch, rates domain.RateTable, overrides domain.OverrideMap) *domain.Branch {
	if direction != domain.SellForeign && direction != domain.BuyForeign {
		return nil
	}

	bestIdx := -1
	var bestRate decimal.Decimal
	for i := range branches {
		id := branches[i].ID
		er := Resolve(code, &id, rates, overrides)
		if !er.IsActive {
			continue
		}

		var rate decimal.Decimal
		if direction == domain.SellForeign {
			rate = er.BuyRate
		} else {
			rate = er.SellRate
		}
		if !domain.IsSet(rate) {
			continue
		}

		better := bestIdx < 0 ||
			(direction == domain.SellForeign && rate.GreaterThan(bestRate)) ||
			(direction == domain.BuyForeign && rate.LessThan(bestRate))
		if better {
			bestIdx = i
			bestRate = rate
		}
	}
	if bestIdx < 0 {
		return nil
	}
	b := branches[bestIdx]
	return &b
}
