package services

import (
	"context"
	"fmt"
	"slices"

	"netops-report-service/internal/domain"
	"netops-report-service/internal/platform/obs"
	"netops-report-service/internal/ports"
)

// Time-series procedures walk per-day measurement tables with millions of
// rows; one call per 7-day window keeps each remote execution inside the
// warehouse statement timeout.
const trafficChunkDays = 7

// FetchTrafficSeries loads the traffic timeseries for the filter's date
// range, one sequential remote call per chunk, concatenated and re-sorted
// by day. A missing or inverted range returns an empty series instead of
// scanning all data. Any chunk failure aborts the whole fetch; partial
// series are never returned.
func FetchTrafficSeries(ctx context.Context, source ports.ReportSource, f domain.FilterState) (_ []domain.TrafficPoint, err error) {
	defer obs.Time(ctx, "reports.FetchTrafficSeries")(&err)

	if !f.HasDateRange() {
		return []domain.TrafficPoint{}, nil
	}

	chunks := ChunkRange(*f.DateFrom, *f.DateTo, trafficChunkDays)

	series := make([]domain.TrafficPoint, 0, len(chunks)*trafficChunkDays)
	// Sequential on purpose: parallel chunk fan-out would multiply load on
	// the shared warehouse.
	for _, c := range chunks {
		points, err := source.TrafficTimeseries(ctx, f, c.From, c.To)
		if err != nil {
			return nil, fmt.Errorf("fetch traffic %s..%s: %w",
				c.From.Format("2006-01-02"), c.To.Format("2006-01-02"), err)
		}
		series = append(series, points...)
	}

	// Issuance is chronological but correctness does not depend on it.
	slices.SortFunc(series, func(a, b domain.TrafficPoint) int {
		return a.Day.Compare(b.Day)
	})

	return series, nil
}

// FetchAvailability loads the availability summary table. Single call;
// the percentage-change columns are computed server-side.
func FetchAvailability(ctx context.Context, source ports.ReportSource, f domain.FilterState) (_ []domain.AvailabilityRow, err error) {
	defer obs.Time(ctx, "reports.FetchAvailability")(&err)

	rows, err := source.AvailabilitySummary(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("fetch availability: %w", err)
	}
	if rows == nil {
		rows = []domain.AvailabilityRow{}
	}
	return rows, nil
}

// FetchComplaints loads complaint aggregates by category.
func FetchComplaints(ctx context.Context, source ports.ReportSource, f domain.FilterState) (_ []domain.ComplaintRow, err error) {
	defer obs.Time(ctx, "reports.FetchComplaints")(&err)

	rows, err := source.ComplaintsByCategory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("fetch complaints: %w", err)
	}
	if rows == nil {
		rows = []domain.ComplaintRow{}
	}
	return rows, nil
}

// FetchRMSPower loads the RMS power telemetry summary.
func FetchRMSPower(ctx context.Context, source ports.ReportSource, f domain.FilterState) (_ []domain.RMSRow, err error) {
	defer obs.Time(ctx, "reports.FetchRMSPower")(&err)

	rows, err := source.RMSPowerSummary(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("fetch rms summary: %w", err)
	}
	if rows == nil {
		rows = []domain.RMSRow{}
	}
	return rows, nil
}
