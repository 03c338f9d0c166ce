package services

import (
	"math"
	"slices"

	"netops-report-service/internal/domain"
)

const (
	earthRadiusMeters = 6371000.0

	// Neighbor search keeps the 5 closest sites within 5 km; candidate
	// sets arrive pre-filtered to one administrative region, so a plain
	// scan is enough.
	neighborRadiusKm = 5.0
	neighborLimit    = 5
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineKm computes the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c / 1000.0
}

// NearestSites ranks candidates by great-circle distance from ref and
// returns the closest ones within the radius. The reference site itself
// and any candidate missing a coordinate are excluded. Pure function of
// its inputs; callers recompute on every selection change.
func NearestSites(ref domain.SitePoint, candidates []domain.SitePoint) []domain.Neighbor {
	if !ref.Plottable() {
		return []domain.Neighbor{}
	}

	origin := ref.Coords()

	neighbors := make([]domain.Neighbor, 0, neighborLimit)
	for _, c := range candidates {
		if c.SiteID == ref.SiteID || !c.Plottable() {
			continue
		}

		km := HaversineKm(origin, c.Coords())
		if km > neighborRadiusKm {
			continue
		}

		// Round for display here so sorting below stays stable against
		// what the UI shows.
		neighbors = append(neighbors, domain.Neighbor{
			Site:       c,
			DistanceKm: math.Round(km*100) / 100,
		})
	}

	slices.SortFunc(neighbors, func(a, b domain.Neighbor) int {
		if a.DistanceKm < b.DistanceKm {
			return -1
		}
		if a.DistanceKm > b.DistanceKm {
			return 1
		}
		// Tie-breaker keeps output deterministic for equal distances.
		if a.Site.SiteID < b.Site.SiteID {
			return -1
		}
		if a.Site.SiteID > b.Site.SiteID {
			return 1
		}
		return 0
	})

	if len(neighbors) > neighborLimit {
		neighbors = neighbors[:neighborLimit]
	}
	return neighbors
}
