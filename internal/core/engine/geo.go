package engine

import (
	"math"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b domain.GeoPoint) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Nearest picks the branch closest to point by great-circle distance.
//
// Branches without coordinates, including the (0,0) "no data" sentinel, are
// excluded outright rather than treated as distance-zero matches. Ties keep
// the first-seen branch so results are deterministic. Returns nil when the
// point itself carries no data or no branch has a usable location; callers
// fall back to best-rate selection.
func Nearest(point domain.GeoPoint, branches []domain.Branch) *domain.Branch {
	if !point.IsValid() {
		return nil
	}

	bestIdx := -1
	bestDist := 0.0
	for i := range branches {
		if !branches[i].HasLocation() {
			continue
		}
		d := HaversineKm(point, *branches[i].Coordinates)
		if bestIdx < 0 || d < bestDist {
			bestIdx = i
			bestDist = d
		}
	}
	if bestIdx < 0 {
		return nil
	}
	b := branches[bestIdx]
	return &b
}
