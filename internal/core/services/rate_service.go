package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
	"github.com/svitvalut/exchange_backend/internal/core/engine"
	portsrepo "github.com/svitvalut/exchange_backend/internal/core/ports/repositories"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// RateService assembles rate snapshots and answers the resolved-rate reads.
//
// The snapshot path is layered for availability: database first, then the
// redis cache, then an in-process last-known-good copy. A storefront that
// has rates keeps serving them even when both stores are down.
type RateService struct {
	repo         portsrepo.RateRepositoryFacade
	branchRepo   portsrepo.BranchReader
	cache        portsrepo.SnapshotCache
	baseCurrency string

	mu        sync.RWMutex
	lastKnown *domain.RateSnapshot
}

// NewRateService creates a new RateService. cache may be nil when redis is
// not configured.
func NewRateService(repo portsrepo.RateRepositoryFacade, branchRepo portsrepo.BranchReader, cache portsrepo.SnapshotCache, baseCurrency string) *RateService {
	return &RateService{
		repo:         repo,
		branchRepo:   branchRepo,
		cache:        cache,
		baseCurrency: baseCurrency,
	}
}

// Snapshot returns the current rate snapshot. Database errors degrade to the
// cached snapshot, then to the last snapshot this process assembled; the
// error surfaces only when all three are empty-handed.
func (s *RateService) Snapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	snapshot, err := s.loadSnapshot(ctx)
	if err == nil {
		s.remember(ctx, snapshot)
		return snapshot, nil
	}
	logger.Warn("Failed to assemble rate snapshot from database, trying fallbacks", slog.String("error", err.Error()))

	if s.cache != nil {
		cached, cacheErr := s.cache.GetSnapshot(ctx)
		if cacheErr == nil {
			logger.Info("Serving cached rate snapshot", slog.Time("updated_at", cached.UpdatedAt))
			return cached, nil
		}
		logger.Warn("Rate snapshot cache miss", slog.String("error", cacheErr.Error()))
	}

	s.mu.RLock()
	last := s.lastKnown
	s.mu.RUnlock()
	if last != nil {
		logger.Info("Serving last known rate snapshot", slog.Time("updated_at", last.UpdatedAt))
		return last, nil
	}

	return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
}

// ListCurrencies returns the merged currency listing for a branch. Currencies
// that resolve inactive (globally disabled, or explicitly disabled for the
// branch) are omitted.
func (s *RateService) ListCurrencies(ctx context.Context, branchID *int64) ([]domain.CurrencyListing, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]domain.CurrencyListing, 0, len(snapshot.Rates))
	for code, global := range snapshot.Rates {
		effective := engine.Resolve(code, branchID, snapshot.Rates, snapshot.Overrides)
		if !effective.IsActive {
			continue
		}
		listings = append(listings, domain.CurrencyListing{
			Effective: effective,
			Name:      global.Name,
			Flag:      global.Flag,
			IsPopular: global.IsPopular,
			SortOrder: global.SortOrder,
		})
	}

	sort.Slice(listings, func(i, j int) bool {
		if listings[i].SortOrder != listings[j].SortOrder {
			return listings[i].SortOrder < listings[j].SortOrder
		}
		return listings[i].Effective.Code < listings[j].Effective.Code
	})
	return listings, nil
}

// RateSummary returns the compact active-currency buy/sell view for a branch.
func (s *RateService) RateSummary(ctx context.Context, branchID *int64) (*domain.RateSummary, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	listings, err := s.ListCurrencies(ctx, branchID)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]domain.RatePair, len(listings))
	for _, l := range listings {
		rates[l.Effective.Code] = domain.RatePair{
			Buy:  l.Effective.BuyRate,
			Sell: l.Effective.SellRate,
		}
	}
	return &domain.RateSummary{
		BaseCurrency: s.baseCurrency,
		Rates:        rates,
		UpdatedAt:    snapshot.UpdatedAt,
	}, nil
}

// ListCrossRates returns the active stored cross pairs ordered for display.
func (s *RateService) ListCrossRates(ctx context.Context) ([]domain.CrossRate, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	crosses := make([]domain.CrossRate, 0, len(snapshot.Cross))
	for _, cr := range snapshot.Cross {
		if !cr.IsActive {
			continue
		}
		crosses = append(crosses, cr)
	}
	sort.Slice(crosses, func(i, j int) bool {
		if crosses[i].SortOrder != crosses[j].SortOrder {
			return crosses[i].SortOrder < crosses[j].SortOrder
		}
		return crosses[i].PairKey() < crosses[j].PairKey()
	})
	return crosses, nil
}

// loadSnapshot reads every dataset the engine consumes in one pass.
func (s *RateService) loadSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	currencyRates, err := s.repo.ListCurrencyRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}
	branchRates, err := s.repo.ListBranchRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branch rates: %w", err)
	}
	crossRates, err := s.repo.ListCrossRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cross rates: %w", err)
	}
	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	table := make(domain.RateTable, len(currencyRates))
	for _, cr := range currencyRates {
		table[domain.NormalizeCurrencyCode(cr.Code)] = cr
	}

	// The site settings row may carry a storewide minimum wholesale amount;
	// it backfills currencies that don't set their own threshold.
	settings, err := s.repo.GetSiteSettings(ctx)
	if err == nil && settings != nil && domain.IsSet(settings.MinWholesaleAmount) {
		for code, cr := range table {
			if !domain.IsSet(cr.WholesaleThreshold) {
				cr.WholesaleThreshold = settings.MinWholesaleAmount
				table[code] = cr
			}
		}
	}

	overrides := make(domain.OverrideMap)
	for _, br := range branchRates {
		code := domain.NormalizeCurrencyCode(br.Code)
		if overrides[br.BranchID] == nil {
			overrides[br.BranchID] = make(map[string]domain.BranchRate)
		}
		overrides[br.BranchID][code] = br
	}

	cross := make(domain.CrossTable, len(crossRates))
	for _, cr := range crossRates {
		cross[cr.PairKey()] = cr
	}

	return &domain.RateSnapshot{
		Rates:     table,
		Overrides: overrides,
		Cross:     cross,
		Branches:  branches,
		UpdatedAt: time.Now(),
	}, nil
}

// remember propagates a fresh snapshot to the fallback layers.
func (s *RateService) remember(ctx context.Context, snapshot *domain.RateSnapshot) {
	s.mu.Lock()
	s.lastKnown = snapshot
	s.mu.Unlock()

	if s.cache == nil {
		return
	}
	if err := s.cache.SetSnapshot(ctx, snapshot); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to cache rate snapshot", slog.String("error", err.Error()))
	}
}
