package domain

// SitePoint is a read-only projection of one row from the sites_by_region
// procedure, used for map rendering and neighbor search. Coordinates come
// back nullable from the warehouse; a point with only one half of the pair
// is unplottable and excluded everywhere.
type SitePoint struct {
	SiteID         string
	SiteName       string
	Latitude       *float64
	Longitude      *float64
	Classification string
	District       string
	Grid           string
	Address        string
}

// Plottable reports whether both coordinates are present.
func (s SitePoint) Plottable() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Coords returns the point's coordinates; valid only when Plottable.
func (s SitePoint) Coords() Coordinates {
	return Coordinates{Lat: *s.Latitude, Lon: *s.Longitude}
}

// Neighbor is a site ranked by great-circle distance from a reference
// point. DistanceKm is rounded to 2 decimals for display.
type Neighbor struct {
	Site       SitePoint
	DistanceKm float64
}
