package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for one resolved currency.
type CurrencyResponse struct {
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Flag               string          `json:"flag,omitempty"`
	BuyRate            decimal.Decimal `json:"buyRate"`
	SellRate           decimal.Decimal `json:"sellRate"`
	WholesaleBuyRate   decimal.Decimal `json:"wholesaleBuyRate"`
	WholesaleSellRate  decimal.Decimal `json:"wholesaleSellRate"`
	WholesaleThreshold decimal.Decimal `json:"wholesaleThreshold"`
	IsPopular          bool            `json:"isPopular"`
	Overridden         bool            `json:"overridden"`
}

// ToCurrencyResponse converts a domain.CurrencyListing to CurrencyResponse DTO
func ToCurrencyResponse(l domain.CurrencyListing) CurrencyResponse {
	return CurrencyResponse{
		Code:               l.Effective.Code,
		Name:               l.Name,
		Flag:               l.Flag,
		BuyRate:            l.Effective.BuyRate,
		SellRate:           l.Effective.SellRate,
		WholesaleBuyRate:   l.Effective.WholesaleBuyRate,
		WholesaleSellRate:  l.Effective.WholesaleSellRate,
		WholesaleThreshold: l.Effective.WholesaleThreshold,
		IsPopular:          l.IsPopular,
		Overridden:         l.Effective.Overridden,
	}
}

// ToListCurrencyResponse converts a slice of listings to response DTOs
func ToListCurrencyResponse(listings []domain.CurrencyListing) []CurrencyResponse {
	res := make([]CurrencyResponse, len(listings))
	for i, l := range listings {
		res[i] = ToCurrencyResponse(l)
	}
	return res
}

// RatePairResponse is one row of the compact rates payload.
type RatePairResponse struct {
	Buy  decimal.Decimal `json:"buy"`
	Sell decimal.Decimal `json:"sell"`
}

// RatesResponse is the compact buy/sell view of every active currency.
type RatesResponse struct {
	BaseCurrency string                      `json:"baseCurrency"`
	Rates        map[string]RatePairResponse `json:"rates"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// ToRatesResponse converts a domain.RateSummary to RatesResponse DTO
func ToRatesResponse(s *domain.RateSummary) RatesResponse {
	rates := make(map[string]RatePairResponse, len(s.Rates))
	for code, pair := range s.Rates {
		rates[code] = RatePairResponse{Buy: pair.Buy, Sell: pair.Sell}
	}
	return RatesResponse{
		BaseCurrency: s.BaseCurrency,
		Rates:        rates,
		UpdatedAt:    s.UpdatedAt,
	}
}

// CrossRateResponse defines the data returned for one stored cross pair.
type CrossRateResponse struct {
	Pair          string          `json:"pair"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	BuyRate       decimal.Decimal `json:"buyRate"`
	SellRate      decimal.Decimal `json:"sellRate"`
}

// ToListCrossRateResponse converts stored cross pairs to response DTOs
func ToListCrossRateResponse(crosses []domain.CrossRate) []CrossRateResponse {
	res := make([]CrossRateResponse, len(crosses))
	for i, cr := range crosses {
		res[i] = CrossRateResponse{
			Pair:          cr.PairKey(),
			BaseCurrency:  cr.BaseCurrency,
			QuoteCurrency: cr.QuoteCurrency,
			BuyRate:       cr.BuyRate,
			SellRate:      cr.SellRate,
		}
	}
	return res
}
