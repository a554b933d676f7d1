package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portsrepo "github.com/svitvalut/exchange_backend/internal/core/ports/repositories"
)

type PgxRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRateRepository creates the read-side repository for the rate dataset.
func NewPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{pool: pool}
}

// ListCurrencyRates retrieves every global currency record, inactive ones
// included; availability filtering happens after the merge, not here.
func (r *PgxRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `
		SELECT code, name, flag, buy_rate, sell_rate,
		       wholesale_buy_rate, wholesale_sell_rate, wholesale_threshold,
		       is_active, is_popular, sort_order
		FROM currencies
		ORDER BY sort_order, code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyRate, error) {
		var cr domain.CurrencyRate
		err := row.Scan(
			&cr.Code,
			&cr.Name,
			&cr.Flag,
			&cr.BuyRate,
			&cr.SellRate,
			&cr.WholesaleBuyRate,
			&cr.WholesaleSellRate,
			&cr.WholesaleThreshold,
			&cr.IsActive,
			&cr.IsPopular,
			&cr.SortOrder,
		)
		return cr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency rates: %w", err)
	}
	return rates, nil
}

// FindCurrencyRateByCode retrieves a single global currency record.
func (r *PgxRateRepository) FindCurrencyRateByCode(ctx context.Context, code string) (*domain.CurrencyRate, error) {
	query := `
		SELECT code, name, flag, buy_rate, sell_rate,
		       wholesale_buy_rate, wholesale_sell_rate, wholesale_threshold,
		       is_active, is_popular, sort_order
		FROM currencies
		WHERE code = $1;
	`
	var cr domain.CurrencyRate
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&cr.Code,
		&cr.Name,
		&cr.Flag,
		&cr.BuyRate,
		&cr.SellRate,
		&cr.WholesaleBuyRate,
		&cr.WholesaleSellRate,
		&cr.WholesaleThreshold,
		&cr.IsActive,
		&cr.IsPopular,
		&cr.SortOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency rate by code %s: %w", code, err)
	}
	return &cr, nil
}

// ListBranchRates retrieves every branch override row.
func (r *PgxRateRepository) ListBranchRates(ctx context.Context) ([]domain.BranchRate, error) {
	query := `
		SELECT branch_id, code, buy_rate, sell_rate,
		       wholesale_buy_rate, wholesale_sell_rate, wholesale_threshold,
		       is_active
		FROM branch_rates;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BranchRate, error) {
		var br domain.BranchRate
		err := row.Scan(
			&br.BranchID,
			&br.Code,
			&br.BuyRate,
			&br.SellRate,
			&br.WholesaleBuyRate,
			&br.WholesaleSellRate,
			&br.WholesaleThreshold,
			&br.IsActive,
		)
		return br, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan branch rates: %w", err)
	}
	return rates, nil
}

// ListCrossRates retrieves the stored cross-rate table.
func (r *PgxRateRepository) ListCrossRates(ctx context.Context) ([]domain.CrossRate, error) {
	query := `
		SELECT base_currency, quote_currency, buy_rate, sell_rate, is_active, sort_order
		FROM cross_rates
		ORDER BY sort_order, base_currency, quote_currency;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cross rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CrossRate, error) {
		var cr domain.CrossRate
		err := row.Scan(
			&cr.BaseCurrency,
			&cr.QuoteCurrency,
			&cr.BuyRate,
			&cr.SellRate,
			&cr.IsActive,
			&cr.SortOrder,
		)
		return cr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cross rates: %w", err)
	}
	return rates, nil
}

// GetSiteSettings retrieves the singleton settings row.
func (r *PgxRateRepository) GetSiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	query := `
		SELECT company_name, base_currency, min_wholesale_amount, reservation_time_minutes
		FROM site_settings
		LIMIT 1;
	`
	var s domain.SiteSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.CompanyName,
		&s.BaseCurrency,
		&s.MinWholesaleAmount,
		&s.ReservationMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find site settings: %w", err)
	}
	return &s, nil
}
