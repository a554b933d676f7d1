package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	"github.com/svitvalut/exchange_backend/internal/core/engine"
	portsrepo "github.com/svitvalut/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// BranchService answers branch reads and runs the selectors over the
// current rate snapshot.
type BranchService struct {
	branchRepo portsrepo.BranchReader
	rates      portssvc.RateReaderSvc
}

// NewBranchService creates a new BranchService.
func NewBranchService(branchRepo portsrepo.BranchReader, rates portssvc.RateReaderSvc) *BranchService {
	return &BranchService{branchRepo: branchRepo, rates: rates}
}

// ListBranches retrieves all branches ordered for display.
func (s *BranchService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches in service: %w", err)
	}
	if branches == nil {
		return []domain.Branch{}, nil
	}
	return branches, nil
}

// GetBranchByID retrieves a specific branch.
func (s *BranchService) GetBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch by id in service: %w", err)
	}
	return branch, nil
}

// NearestBranch returns the branch closest to point.
func (s *BranchService) NearestBranch(ctx context.Context, point domain.GeoPoint) (*domain.Branch, error) {
	if !point.IsValid() {
		return nil, fmt.Errorf("%w: coordinates carry no data", apperrors.ErrValidation)
	}
	branches, err := s.ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	nearest := engine.Nearest(point, branches)
	if nearest == nil {
		return nil, fmt.Errorf("%w: no branch has usable coordinates", apperrors.ErrNotFound)
	}
	return nearest, nil
}

// BestRateBranch returns the branch with the most favorable rate for the
// customer on the given side of the trade.
func (s *BranchService) BestRateBranch(ctx context.Context, code string, direction domain.Direction) (*domain.Branch, error) {
	code = domain.NormalizeCurrencyCode(code)
	if !domain.ValidCurrencyCode(code) {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	snapshot, err := s.rates.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	best := engine.BestRateBranch(code, direction, snapshot.Branches, snapshot.Rates, snapshot.Overrides)
	if best == nil {
		return nil, fmt.Errorf("%w: currency %s is not available at any branch", apperrors.ErrUnavailable, code)
	}
	return best, nil
}

// AutoSelect runs one branch auto-selection pass: geographic nearest when a
// position is known, best-rate otherwise. The returned choice names which
// selector won; a nil-branch choice means nothing qualified.
func (s *BranchService) AutoSelect(ctx context.Context, point *domain.GeoPoint, code string, direction domain.Direction) (*domain.BranchChoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code = domain.NormalizeCurrencyCode(code)
	if code != "" && !domain.ValidCurrencyCode(code) {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	snapshot, err := s.rates.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Each request is its own selection pass; persistence across currency
	// toggles lives client-side, where the session keeps its active branch
	// and simply stops calling this endpoint.
	sel := engine.NewBranchSelection()
	chosen := sel.AutoSelect(engine.AutoSelectInput{
		Point:     point,
		Currency:  code,
		Direction: direction,
		Branches:  snapshot.Branches,
		Rates:     snapshot.Rates,
		Overrides: snapshot.Overrides,
	})
	if chosen == nil {
		logger.Debug("Auto-selection found no branch", slog.String("currency", code))
		return &domain.BranchChoice{Method: domain.SelectionNone}, nil
	}

	method := domain.SelectionBestRate
	if point != nil {
		if nearest := engine.Nearest(*point, snapshot.Branches); nearest != nil && nearest.ID == chosen.ID {
			method = domain.SelectionGeo
		}
	}
	logger.Debug("Auto-selected branch",
		slog.Int64("branch_id", chosen.ID),
		slog.String("method", string(method)),
	)
	return &domain.BranchChoice{Branch: chosen, Method: method}, nil
}
