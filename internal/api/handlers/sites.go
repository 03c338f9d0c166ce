package handlers

import (
	"log"
	"net/http"
	"strings"

	"netops-report-service/internal/api/dto"
	"netops-report-service/internal/domain"
	"netops-report-service/internal/ports"
	"netops-report-service/internal/services"
)

// SiteHandler serves GIS map points and the nearest-neighbor lookup the
// map popup uses.
type SiteHandler struct {
	Source ports.SiteSource
}

// List returns plottable map points for a region, fetched under the
// degrading-limit retry policy.
func (h *SiteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	region := strings.TrimSpace(r.URL.Query().Get("region"))
	if region == "" {
		writeError(w, r, http.StatusBadRequest, "region is required")
		return
	}

	points, err := services.FetchSitePoints(r.Context(), h.Source, region)
	if err != nil {
		log.Printf("site fetch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	res := dto.SitesResponse{Sites: make([]dto.SitePointResponse, 0, len(points))}
	for _, p := range points {
		res.Sites = append(res.Sites, sitePointResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Neighbors ranks the sites closest to a selected site within the same
// region. The candidate set is re-fetched so the ranking always reflects
// the rows the map is showing.
func (h *SiteHandler) Neighbors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	region := strings.TrimSpace(q.Get("region"))
	siteID := strings.TrimSpace(q.Get("site_id"))
	if region == "" || siteID == "" {
		writeError(w, r, http.StatusBadRequest, "region and site_id are required")
		return
	}

	points, err := services.FetchSitePoints(r.Context(), h.Source, region)
	if err != nil {
		log.Printf("site fetch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	var ref *domain.SitePoint
	for i := range points {
		if points[i].SiteID == siteID {
			ref = &points[i]
			break
		}
	}
	if ref == nil {
		writeError(w, r, http.StatusNotFound, "site not found in region")
		return
	}

	neighbors := services.NearestSites(*ref, points)

	res := dto.NeighborsResponse{
		Reference: sitePointResponse(*ref),
		Neighbors: make([]dto.NeighborResponse, 0, len(neighbors)),
	}
	for _, n := range neighbors {
		res.Neighbors = append(res.Neighbors, dto.NeighborResponse{
			Site:       sitePointResponse(n.Site),
			DistanceKm: n.DistanceKm,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func sitePointResponse(p domain.SitePoint) dto.SitePointResponse {
	return dto.SitePointResponse(p)
}
