package dto

import (
	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// CalculateRequest defines the query parameters of a conversion quote.
// Amount stays a string through binding; decimal parsing happens in the
// handler so a malformed value gets a clean validation error.
type CalculateRequest struct {
	From     string `form:"from" binding:"required,len=3"`
	To       string `form:"to" binding:"required,len=3"`
	Amount   string `form:"amount" binding:"required"`
	BranchID *int64 `form:"branch_id"`
}

// CalculateResponse defines the data returned for a conversion quote.
type CalculateResponse struct {
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     string          `json:"direction"`
	BranchID      *int64          `json:"branchId,omitempty"`
	CounterAmount decimal.Decimal `json:"counterAmount"`
	RateUsed      decimal.Decimal `json:"rateUsed"`
	Tier          string          `json:"tier"`
	Synthetic     bool            `json:"synthetic"`
}

// ToCalculateResponse converts a domain.Calculation to CalculateResponse DTO
func ToCalculateResponse(calc *domain.Calculation) CalculateResponse {
	return CalculateResponse{
		FromCurrency:  calc.FromCurrency,
		ToCurrency:    calc.ToCurrency,
		Amount:        calc.Amount,
		Direction:     string(calc.Direction),
		BranchID:      calc.BranchID,
		CounterAmount: calc.Result.CounterAmount,
		RateUsed:      calc.Result.RateUsed,
		Tier:          string(calc.Result.TierUsed),
		Synthetic:     calc.Result.Synthetic,
	}
}
