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

type PgxBranchRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBranchRepository creates the read-side repository for branches.
func NewPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchReader {
	return &PgxBranchRepository{pool: pool}
}

// ListBranches retrieves all branches ordered for display.
func (r *PgxBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	query := `
		SELECT id, number, address, latitude, longitude, hours, phone, is_open, sort_order
		FROM branches
		ORDER BY sort_order, id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	branches, err := pgx.CollectRows(rows, scanBranch)
	if err != nil {
		return nil, fmt.Errorf("failed to scan branches: %w", err)
	}
	return branches, nil
}

// FindBranchByID retrieves a specific branch.
func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error) {
	query := `
		SELECT id, number, address, latitude, longitude, hours, phone, is_open, sort_order
		FROM branches
		WHERE id = $1;
	`
	rows, err := r.pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch %d: %w", branchID, err)
	}
	defer rows.Close()

	branch, err := pgx.CollectOneRow(rows, scanBranch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find branch %d: %w", branchID, err)
	}
	return &branch, nil
}

// scanBranch maps one row, folding nullable or (0,0) coordinates into a nil
// GeoPoint so geographic selection skips the branch.
func scanBranch(row pgx.CollectableRow) (domain.Branch, error) {
	var b domain.Branch
	var lat, lng *float64
	err := row.Scan(
		&b.ID,
		&b.Number,
		&b.Address,
		&lat,
		&lng,
		&b.Hours,
		&b.Phone,
		&b.IsOpen,
		&b.SortOrder,
	)
	if err != nil {
		return b, err
	}
	if lat != nil && lng != nil {
		b.Coordinates = domain.ParseGeoPoint(*lat, *lng)
	}
	return b, nil
}
