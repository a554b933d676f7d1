package services

import (
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portsrepo "github.com/svitvalut/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	if cfg.WholesaleThreshold.IsPositive() {
		domain.DefaultWholesaleThreshold = cfg.WholesaleThreshold
	}

	// Rate service first since quotes and branch selection read through it
	rates := NewRateService(repos.RateRepo, repos.BranchRepo, repos.Cache, cfg.BaseCurrency)
	container.Rates = rates

	container.Quotes = NewQuoteService(rates, cfg.BaseCurrency)
	container.Branches = NewBranchService(repos.BranchRepo, rates)
	container.Location = NewLocationService(repos.Geolocator)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateSvcFacade     = (*RateService)(nil)
	_ portssvc.QuoteSvcFacade    = (*QuoteService)(nil)
	_ portssvc.BranchSvcFacade   = (*BranchService)(nil)
	_ portssvc.LocationSvcFacade = (*LocationService)(nil)
)
