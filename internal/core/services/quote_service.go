package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	"github.com/svitvalut/exchange_backend/internal/core/engine"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// QuoteService prices conversion requests against the current snapshot.
type QuoteService struct {
	rates        portssvc.RateReaderSvc
	baseCurrency string
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(rates portssvc.RateReaderSvc, baseCurrency string) *QuoteService {
	return &QuoteService{rates: rates, baseCurrency: baseCurrency}
}

// Calculate quotes a conversion of amount from one currency to another.
//
// The direction is inferred from which side is the domestic currency:
// foreign -> domestic means the customer sells foreign, domestic -> foreign
// means the customer buys foreign, and anything else is a cross pair.
// Unknown or disabled currencies quote a zero counter-amount rather than
// failing; only malformed input is an error.
func (s *QuoteService) Calculate(ctx context.Context, from, to string, amount decimal.Decimal, branchID *int64) (*domain.Calculation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	from = domain.NormalizeCurrencyCode(from)
	to = domain.NormalizeCurrencyCode(to)
	if !domain.ValidCurrencyCode(from) || !domain.ValidCurrencyCode(to) {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	snapshot, err := s.rates.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot for calculation: %w", err)
	}

	calc := &domain.Calculation{
		FromCurrency: from,
		ToCurrency:   to,
		Amount:       amount,
		BranchID:     branchID,
	}

	switch {
	case to == s.baseCurrency:
		calc.Direction = domain.SellForeign
		er := engine.Resolve(from, branchID, snapshot.Rates, snapshot.Overrides)
		calc.Result = engine.Quote(er, amount, domain.SellForeign)
	case from == s.baseCurrency:
		calc.Direction = domain.BuyForeign
		er := engine.Resolve(to, branchID, snapshot.Rates, snapshot.Overrides)
		calc.Result = engine.Quote(er, amount, domain.BuyForeign)
	default:
		calc.Direction = domain.CrossPair
		base := engine.Resolve(from, branchID, snapshot.Rates, snapshot.Overrides)
		quote := engine.Resolve(to, branchID, snapshot.Rates, snapshot.Overrides)
		calc.Result = engine.CrossQuote(base, quote, snapshot.Cross, amount)
	}

	logger.Debug("Calculated quote",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("direction", string(calc.Direction)),
		slog.String("tier", string(calc.Result.TierUsed)),
	)
	return calc, nil
}
