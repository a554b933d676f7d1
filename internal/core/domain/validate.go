package domain

import (
	"strconv"
	"strings"
)

// NormalizeCurrencyCode upper-cases and trims a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCurrencyCode reports whether code is a plausible 3-letter identifier.
func ValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ParseCoordinate converts a backend-shaped lat/lng value into a float.
// Upstream payloads are known to carry coordinates as numbers, numeric
// strings, null, or 0; anything unusable yields ok=false.
func ParseCoordinate(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ParseGeoPoint builds a GeoPoint from tolerant lat/lng values. It returns
// nil when either coordinate is missing or when the pair is the (0,0)
// "no data" sentinel.
func ParseGeoPoint(latRaw, lngRaw any) *GeoPoint {
	lat, okLat := ParseCoordinate(latRaw)
	lng, okLng := ParseCoordinate(lngRaw)
	if !okLat || !okLng {
		return nil
	}
	p := GeoPoint{Lat: lat, Lng: lng}
	if !p.IsValid() {
		return nil
	}
	return &p
}
