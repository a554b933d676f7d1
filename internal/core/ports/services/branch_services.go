package services

import (
	"context"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// BranchReaderSvc defines read operations for exchange branches.
type BranchReaderSvc interface {
	// ListBranches retrieves all branches ordered for display.
	ListBranches(ctx context.Context) ([]domain.Branch, error)

	// GetBranchByID retrieves a specific branch.
	GetBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error)
}

// BranchSelectorSvc runs the branch selectors over the current snapshot.
type BranchSelectorSvc interface {
	// NearestBranch returns the branch closest to point, or
	// apperrors.ErrNotFound when no branch has usable coordinates.
	NearestBranch(ctx context.Context, point domain.GeoPoint) (*domain.Branch, error)

	// BestRateBranch returns the branch with the most favorable rate for
	// the customer, or apperrors.ErrUnavailable when no branch offers the
	// currency.
	BestRateBranch(ctx context.Context, code string, direction domain.Direction) (*domain.Branch, error)

	// AutoSelect runs geographic selection first and falls back to
	// best-rate selection. The returned choice names which selector won;
	// a choice with a nil branch and SelectionNone means nothing
	// qualified.
	AutoSelect(ctx context.Context, point *domain.GeoPoint, code string, direction domain.Direction) (*domain.BranchChoice, error)
}

// BranchSvcFacade combines all branch-related service interfaces.
type BranchSvcFacade interface {
	BranchReaderSvc
	BranchSelectorSvc
}
