package repositories

import (
	"context"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// SnapshotCache defines the cache-aside store for assembled rate snapshots.
// A miss is reported as apperrors.ErrNotFound, not a nil snapshot.
type SnapshotCache interface {
	// GetSnapshot retrieves the cached snapshot.
	GetSnapshot(ctx context.Context) (*domain.RateSnapshot, error)

	// SetSnapshot stores a freshly assembled snapshot.
	SetSnapshot(ctx context.Context, snapshot *domain.RateSnapshot) error
}

// Geolocator resolves a client IP address to approximate coordinates.
type Geolocator interface {
	// Locate returns the coordinates for ip, or apperrors.ErrLocation when
	// no provider could place it.
	Locate(ctx context.Context, ip string) (*domain.GeoPoint, error)
}
