package handlers

import (
	"net/http"
	"strings"

	"netops-report-service/internal/api/dto"
	"netops-report-service/internal/services"
)

// PicklistHandler serves the dropdown value lists. Loads are best-effort;
// a warehouse failure answers an empty list, never an error.
type PicklistHandler struct {
	Picklists *services.Picklists
}

func (h *PicklistHandler) Regions(w http.ResponseWriter, r *http.Request) {
	if !picklistGet(w, r) {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.PicklistResponse{Values: h.Picklists.Regions(r.Context())})
}

func (h *PicklistHandler) SubRegions(w http.ResponseWriter, r *http.Request) {
	if !picklistGet(w, r) {
		return
	}
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	if region == "" {
		writeError(w, r, http.StatusBadRequest, "region is required")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.PicklistResponse{Values: h.Picklists.SubRegions(r.Context(), region)})
}

func (h *PicklistHandler) Districts(w http.ResponseWriter, r *http.Request) {
	if !picklistGet(w, r) {
		return
	}
	subregion := strings.TrimSpace(r.URL.Query().Get("subregion"))
	if subregion == "" {
		writeError(w, r, http.StatusBadRequest, "subregion is required")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.PicklistResponse{Values: h.Picklists.Districts(r.Context(), subregion)})
}

func (h *PicklistHandler) Grids(w http.ResponseWriter, r *http.Request) {
	if !picklistGet(w, r) {
		return
	}
	district := strings.TrimSpace(r.URL.Query().Get("district"))
	if district == "" {
		writeError(w, r, http.StatusBadRequest, "district is required")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.PicklistResponse{Values: h.Picklists.Grids(r.Context(), district)})
}

// Options answers the joined subregion/district fetch a region change
// triggers, so the page repopulates both dropdowns with one round trip.
func (h *PicklistHandler) Options(w http.ResponseWriter, r *http.Request) {
	if !picklistGet(w, r) {
		return
	}

	q := r.URL.Query()
	region := strings.TrimSpace(q.Get("region"))
	subregion := strings.TrimSpace(q.Get("subregion"))
	if region == "" || subregion == "" {
		writeError(w, r, http.StatusBadRequest, "region and subregion are required")
		return
	}

	subregions, districts := h.Picklists.FilterOptions(r.Context(), region, subregion)
	writeJSON(w, r, http.StatusOK, dto.FilterOptionsResponse{
		SubRegions: subregions,
		Districts:  districts,
	})
}

func picklistGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}
