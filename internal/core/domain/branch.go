package domain

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid reports whether the point carries real location data. The origin
// (0,0) is a storage sentinel for "unknown", never an actual branch location.
func (p GeoPoint) IsValid() bool {
	return p.Lat != 0 || p.Lng != 0
}

// Branch is a physical location that services exchanges.
type Branch struct {
	ID      int64  `json:"id"`
	Number  int    `json:"number"`
	Address string `json:"address"`
	// Coordinates is nil when the branch location is unknown; a stored
	// (0,0) is treated the same way.
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
	Hours       string    `json:"hours"`
	Phone       string    `json:"phone"`
	IsOpen      bool      `json:"isOpen"`
	SortOrder   int       `json:"order"`
}

// HasLocation reports whether the branch can take part in geographic
// selection.
func (b Branch) HasLocation() bool {
	return b.Coordinates != nil && b.Coordinates.IsValid()
}

// LocationSource identifies which acquisition path produced a GeoPoint.
type LocationSource string

const (
	LocationFromDevice LocationSource = "device"
	LocationFromIP     LocationSource = "ip"
	LocationFromManual LocationSource = "manual"
)

// Location is a resolved user position together with its provenance.
type Location struct {
	Point  GeoPoint       `json:"point"`
	Source LocationSource `json:"source"`
}
