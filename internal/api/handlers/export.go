package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	"netops-report-service/internal/ports"
	"netops-report-service/internal/services"
)

// ExportHandler renders report rows into a downloadable spreadsheet, the
// dashboard's "export" button.
type ExportHandler struct {
	Source ports.ReportSource
}

func (h *ExportHandler) Traffic(w http.ResponseWriter, r *http.Request) {
	f, ok := filterOrError(w, r)
	if !ok {
		return
	}

	if !f.HasDateRange() {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	points, err := services.FetchTrafficSeries(r.Context(), h.Source, f)
	if err != nil {
		log.Printf("traffic export fetch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	book := excelize.NewFile()
	defer book.Close()

	const sheet = "Traffic"
	if err := book.SetSheetName("Sheet1", sheet); err != nil {
		log.Printf("traffic export sheet rename failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := book.SetSheetRow(sheet, "A1", &[]any{"Day", "Volume (GB)", "Erlangs"}); err != nil {
		log.Printf("traffic export header failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	for i, p := range points {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{p.Day.Format("2006-01-02"), p.VolumeGB, p.Erlangs}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			log.Printf("traffic export row %d failed: %v", i, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	filename := fmt.Sprintf("traffic_%s_%s.xlsx",
		f.DateFrom.Format("2006-01-02"), f.DateTo.Format("2006-01-02"))

	if sess := SessionFrom(r.Context()); sess != nil {
		log.Printf("traffic export user=%s rows=%d file=%s", sess.Username, len(points), filename)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := book.Write(w); err != nil {
		// Headers are gone; nothing left to do but log.
		log.Printf("traffic export write failed: %v", err)
	}
}
