package engine

import "github.com/svitvalut/exchange_backend/internal/core/domain"

// SelectionState tracks who decided the active branch.
type SelectionState int

const (
	// NoBranch: nothing selected yet; the next auto-selection may run.
	NoBranch SelectionState = iota
	// AutoSelecting: an auto-selection pass ran but found no branch;
	// further passes may retry.
	AutoSelecting
	// BranchActive: a branch is in effect, chosen by the user or by a
	// completed auto-selection. It persists across currency and amount
	// changes until an explicit re-selection or reset.
	BranchActive
)

func (s SelectionState) String() string {
	switch s {
	case NoBranch:
		return "no_branch"
	case AutoSelecting:
		return "auto_selecting"
	case BranchActive:
		return "branch_active"
	}
	return "unknown"
}

// AutoSelectInput carries the full set of values one auto-selection pass
// reads: the user's position (nil when geolocation failed or was denied) and
// the rate dataset for the best-rate fallback.
type AutoSelectInput struct {
	Point     *domain.GeoPoint
	Currency  string
	Direction domain.Direction
	Branches  []domain.Branch
	Rates     domain.RateTable
	Overrides domain.OverrideMap
}

// BranchSelection is the three-state machine that decides which branch
// services the user: NoBranch → AutoSelecting → BranchActive.
//
// Once BranchActive, auto-selection never silently re-runs: currency or
// amount changes only re-resolve rates against the same branch. Only Select
// (a different branch) or Reset leaves the state. Not safe for concurrent
// use; the surrounding layer serializes access.
type BranchSelection struct {
	state  SelectionState
	branch *domain.Branch
}

// NewBranchSelection starts in NoBranch.
func NewBranchSelection() *BranchSelection {
	return &BranchSelection{state: NoBranch}
}

// State returns the current selection state.
func (s *BranchSelection) State() SelectionState {
	return s.state
}

// Active returns the branch currently in effect, or nil.
func (s *BranchSelection) Active() *domain.Branch {
	return s.branch
}

// AutoSelect runs one auto-selection pass: geographic nearest first, then
// best-rate for the given currency and direction. When a branch is already
// active it is returned unchanged and no selector runs — a prior choice,
// manual or automatic, persists across currency toggles. Returns nil when
// neither strategy yields a branch; the state stays AutoSelecting so a later
// pass (say, after geolocation finally resolves) may retry.
func (s *BranchSelection) AutoSelect(in AutoSelectInput) *domain.Branch {
	if s.state == BranchActive {
		return s.branch
	}
	s.state = AutoSelecting

	var chosen *domain.Branch
	if in.Point != nil {
		chosen = Nearest(*in.Point, in.Branches)
	}
	if chosen == nil {
		chosen = BestRateBranch(in.Currency, in.Direction, in.Branches, in.Rates, in.Overrides)
	}
	if chosen == nil {
		return nil
	}

	s.branch = chosen
	s.state = BranchActive
	return chosen
}

// Select records an explicit user choice and activates it.
func (s *BranchSelection) Select(b domain.Branch) {
	s.branch = &b
	s.state = BranchActive
}

// Reset clears the selection, returning to NoBranch so the next
// auto-selection pass may run again.
func (s *BranchSelection) Reset() {
	s.branch = nil
	s.state = NoBranch
}
