package domain

import "time"

// FilterState carries the filter values a dashboard page has selected.
// Every field is optional; nil means "no filter on this dimension" and is
// passed through to the remote procedure as SQL NULL.
type FilterState struct {
	Region    *string
	SubRegion *string
	District  *string
	Grid      *string
	SiteName  *string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// HasDateRange reports whether both bounds are present and ordered.
// Orchestrators refuse to run time-series queries without a bounded range
// rather than defaulting to a full-table scan.
func (f FilterState) HasDateRange() bool {
	return f.DateFrom != nil && f.DateTo != nil && !f.DateFrom.After(*f.DateTo)
}
