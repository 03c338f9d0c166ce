package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"netops-report-service/internal/domain"
)

// parseFilter reads the shared dashboard filter parameters from the query
// string. Absent parameters stay nil and reach the warehouse as SQL NULL.
func parseFilter(r *http.Request) (domain.FilterState, error) {
	q := r.URL.Query()

	var f domain.FilterState
	f.Region = optional(q.Get("region"))
	f.SubRegion = optional(q.Get("subregion"))
	f.District = optional(q.Get("district"))
	f.Grid = optional(q.Get("grid"))
	f.SiteName = optional(q.Get("site"))

	from, err := optionalDate(q.Get("from"))
	if err != nil {
		return f, fmt.Errorf("invalid from date: %w", err)
	}
	to, err := optionalDate(q.Get("to"))
	if err != nil {
		return f, fmt.Errorf("invalid to date: %w", err)
	}
	f.DateFrom = from
	f.DateTo = to

	return f, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
