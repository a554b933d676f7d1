package repositories

import (
	"context"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// BranchReader defines read operations for exchange branches.
type BranchReader interface {
	// ListBranches retrieves all branches ordered for display.
	ListBranches(ctx context.Context) ([]domain.Branch, error)

	// FindBranchByID retrieves a specific branch.
	FindBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error)
}
