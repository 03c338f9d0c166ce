package handlers

import (
	"log"
	"net/http"

	"netops-report-service/internal/api/dto"
	"netops-report-service/internal/domain"
	"netops-report-service/internal/ports"
	"netops-report-service/internal/services"
)

// ReportHandler exposes the dashboard report fetches. Each endpoint maps
// one page's data load; failures surface the warehouse's normalized
// message so the page can display it inline.
type ReportHandler struct {
	Source ports.ReportSource
}

func (h *ReportHandler) Availability(w http.ResponseWriter, r *http.Request) {
	f, ok := filterOrError(w, r)
	if !ok {
		return
	}

	rows, err := services.FetchAvailability(r.Context(), h.Source, f)
	if err != nil {
		log.Printf("availability fetch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	res := dto.AvailabilityResponse{Rows: make([]dto.AvailabilityRowResponse, 0, len(rows))}
	for _, row := range rows {
		res.Rows = append(res.Rows, dto.AvailabilityRowResponse{
			Label:           row.Label,
			AvailabilityPct: row.AvailabilityPct,
			PreviousPct:     row.PreviousPct,
			ChangePct:       row.ChangePct,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReportHandler) Traffic(w http.ResponseWriter, r *http.Request) {
	f, ok := filterOrError(w, r)
	if !ok {
		return
	}

	points, err := services.FetchTrafficSeries(r.Context(), h.Source, f)
	if err != nil {
		log.Printf("traffic fetch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	res := dto.TrafficResponse{Points: make([]dto.TrafficPointResponse, 0, len(points))}
	for _, p := range points {
		res.Points = append(res.Points, dto.TrafficPointResponse{
			Day:      p.Day.Format("2006-01-02"),
			VolumeGB: p.VolumeGB,
			Erlangs:  p.Erlangs,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReportHandler) Complaints(w http.ResponseWriter, r *http.Request) {
	f, ok := filterOrError(w, r)
	if !ok {
		return
	}

	rows, err := services.FetchComplaints(r.Context(), h.Source, f)
	if err != nil {
		log.Printf("complaints fetch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	res := dto.ComplaintsResponse{Rows: make([]dto.ComplaintRowResponse, 0, len(rows))}
	for _, row := range rows {
		res.Rows = append(res.Rows, dto.ComplaintRowResponse(row))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReportHandler) RMS(w http.ResponseWriter, r *http.Request) {
	f, ok := filterOrError(w, r)
	if !ok {
		return
	}

	rows, err := services.FetchRMSPower(r.Context(), h.Source, f)
	if err != nil {
		log.Printf("rms fetch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	res := dto.RMSResponse{Rows: make([]dto.RMSRowResponse, 0, len(rows))}
	for _, row := range rows {
		res.Rows = append(res.Rows, dto.RMSRowResponse(row))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// filterOrError parses the shared filter params, answering 400 itself on
// a malformed date.
func filterOrError(w http.ResponseWriter, r *http.Request) (f domain.FilterState, ok bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return f, false
	}

	f, err := parseFilter(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return f, false
	}
	return f, true
}
