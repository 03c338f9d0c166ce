package services

import (
	"math"
	"testing"

	"netops-report-service/internal/domain"
)

func f64(v float64) *float64 { return &v }

func site(id string, lat, lon float64) domain.SitePoint {
	return domain.SitePoint{SiteID: id, SiteName: id, Latitude: f64(lat), Longitude: f64(lon)}
}

func TestHaversineSymmetric(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{{Lat: 33.6844, Lon: 73.0479}, {Lat: 33.70, Lon: 73.05}},
		{{Lat: 33.6844, Lon: 73.0479}, {Lat: 34.5, Lon: 74.0}},
		{{Lat: -12.05, Lon: -77.04}, {Lat: 51.5, Lon: -0.12}},
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 180}},
	}

	for _, p := range pairs {
		ab := HaversineKm(p[0], p[1])
		ba := HaversineKm(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance: %v vs %v for %v", ab, ba, p)
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Islamabad reference point against a nearby site.
	got := HaversineKm(
		domain.Coordinates{Lat: 33.6844, Lon: 73.0479},
		domain.Coordinates{Lat: 33.70, Lon: 73.05},
	)
	if math.Abs(got-1.745) > 0.01 {
		t.Fatalf("distance = %v km, want ~1.745", got)
	}
}

func TestNearestSitesRadiusAndSelfExclusion(t *testing.T) {
	ref := site("REF", 33.6844, 73.0479)

	candidates := []domain.SitePoint{
		ref, // reference itself must never appear
		site("NEAR", 33.70, 73.05),        // ~1.75 km, included
		site("FAR", 34.5, 74.0),           // ~126 km, excluded
		{SiteID: "NOLAT", Longitude: f64(73.05)}, // missing latitude, excluded
		{SiteID: "NOLON", Latitude: f64(33.70)},  // missing longitude, excluded
	}

	neighbors := NearestSites(ref, candidates)

	if len(neighbors) != 1 {
		t.Fatalf("expected exactly 1 neighbor, got %d: %v", len(neighbors), neighbors)
	}
	if neighbors[0].Site.SiteID != "NEAR" {
		t.Fatalf("neighbor = %q, want NEAR", neighbors[0].Site.SiteID)
	}
	if math.Abs(neighbors[0].DistanceKm-1.75) > 0.01 {
		t.Fatalf("distance = %v, want ~1.75", neighbors[0].DistanceKm)
	}
}

func TestNearestSitesLimitAndOrdering(t *testing.T) {
	ref := site("REF", 33.6844, 73.0479)

	candidates := []domain.SitePoint{
		site("A", 33.72, 73.06),   // ~4.11 km
		site("B", 33.69, 73.048),  // ~0.62 km
		site("C", 33.684, 73.10),  // ~4.82 km
		site("D", 33.686, 73.049), // very close
		site("E", 33.687, 73.050),
		site("F", 33.688, 73.051),
		site("G", 33.689, 73.052),
	}

	neighbors := NearestSites(ref, candidates)

	if len(neighbors) != 5 {
		t.Fatalf("expected 5 neighbors (limit), got %d", len(neighbors))
	}

	for i, n := range neighbors {
		if n.DistanceKm > 5.0 {
			t.Errorf("neighbor %d distance %v exceeds radius", i, n.DistanceKm)
		}
		if i > 0 && neighbors[i-1].DistanceKm > n.DistanceKm {
			t.Errorf("neighbors not sorted ascending at %d: %v then %v", i, neighbors[i-1].DistanceKm, n.DistanceKm)
		}
	}
}

func TestNearestSitesUnplottableReference(t *testing.T) {
	neighbors := NearestSites(domain.SitePoint{SiteID: "REF"}, []domain.SitePoint{
		site("A", 33.70, 73.05),
	})
	if len(neighbors) != 0 {
		t.Fatalf("unplottable reference must yield no neighbors, got %v", neighbors)
	}
}
