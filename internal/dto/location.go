package dto

import (
	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// LocationResponse defines the data returned for a resolved user position.
type LocationResponse struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Source string  `json:"source"`
}

// ToLocationResponse converts a domain.Location to LocationResponse DTO
func ToLocationResponse(loc *domain.Location) LocationResponse {
	return LocationResponse{
		Lat:    loc.Point.Lat,
		Lng:    loc.Point.Lng,
		Source: string(loc.Source),
	}
}
