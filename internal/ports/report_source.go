package ports

import (
	"context"
	"time"

	"netops-report-service/internal/domain"
)

// Port: the remote reporting warehouse, one method per SQL procedure.
// Implementations translate these into named RPC invocations; fakes back
// the service tests.

// PicklistSource serves the distinct-value lists that populate filter
// dropdowns.
type PicklistSource interface {
	Regions(ctx context.Context) ([]string, error)
	SubRegions(ctx context.Context, region string) ([]string, error)
	Districts(ctx context.Context, subregion string) ([]string, error)
	Grids(ctx context.Context, district string) ([]string, error)
}

// ReportSource serves the aggregate/timeseries procedures.
type ReportSource interface {
	AvailabilitySummary(ctx context.Context, f domain.FilterState) ([]domain.AvailabilityRow, error)
	// TrafficTimeseries covers a single [from,to] window; callers chunk
	// wide ranges themselves.
	TrafficTimeseries(ctx context.Context, f domain.FilterState, from, to time.Time) ([]domain.TrafficPoint, error)
	ComplaintsByCategory(ctx context.Context, f domain.FilterState) ([]domain.ComplaintRow, error)
	RMSPowerSummary(ctx context.Context, f domain.FilterState) ([]domain.RMSRow, error)
}

// SiteSource serves GIS map points.
type SiteSource interface {
	// SitesByRegion returns at most maxRows site points for a region.
	SitesByRegion(ctx context.Context, region string, maxRows int) ([]domain.SitePoint, error)
}
