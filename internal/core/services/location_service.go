package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portsrepo "github.com/svitvalut/exchange_backend/internal/core/ports/repositories"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// LocationService resolves a visitor's approximate position.
type LocationService struct {
	geolocator portsrepo.Geolocator
}

// NewLocationService creates a new LocationService.
func NewLocationService(geolocator portsrepo.Geolocator) *LocationService {
	return &LocationService{geolocator: geolocator}
}

// Resolve prefers device-supplied coordinates over IP geolocation: a browser
// position is street-accurate, an IP position is city-accurate at best.
func (s *LocationService) Resolve(ctx context.Context, hint *domain.GeoPoint, ip string) (*domain.Location, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if hint != nil && hint.IsValid() {
		return &domain.Location{Point: *hint, Source: domain.LocationFromDevice}, nil
	}

	if ip == "" {
		return nil, fmt.Errorf("%w: no coordinates and no client ip", apperrors.ErrLocation)
	}

	point, err := s.geolocator.Locate(ctx, ip)
	if err != nil {
		logger.Warn("IP geolocation failed", slog.String("ip", ip), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to geolocate ip: %w", err)
	}
	return &domain.Location{Point: *point, Source: domain.LocationFromIP}, nil
}
