package services

import (
	"context"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// LocationSvc resolves a visitor's approximate location.
type LocationSvc interface {
	// Resolve prefers device-supplied coordinates and falls back to IP
	// geolocation. A nil hint with an unresolvable IP yields
	// apperrors.ErrLocation.
	Resolve(ctx context.Context, hint *domain.GeoPoint, ip string) (*domain.Location, error)
}

// LocationSvcFacade combines all location-related service interfaces.
type LocationSvcFacade interface {
	LocationSvc
}
