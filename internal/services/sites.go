package services

import (
	"context"
	"fmt"
	"log"

	"netops-report-service/internal/adapters/rpc"
	"netops-report-service/internal/domain"
	"netops-report-service/internal/ports"
)

// Row caps tried in order when the warehouse times out on a map-point
// query. Dense regions can push the spatial join past statement_timeout
// at the full cap; smaller caps trade completeness for a rendered map.
var siteRowCaps = []int{1500, 200, 100}

// FetchSitePoints loads map points for a region with the degrading-limit
// retry policy: a timeout-class failure retries at the next smaller cap,
// any other failure aborts immediately, and exhausting every cap returns
// an empty (not nil) slice so the map renders empty rather than erroring.
// Unplottable rows are dropped here.
func FetchSitePoints(ctx context.Context, source ports.SiteSource, region string) ([]domain.SitePoint, error) {
	if region == "" {
		return []domain.SitePoint{}, nil
	}

	for i, rowCap := range siteRowCaps {
		points, err := source.SitesByRegion(ctx, region, rowCap)
		if err == nil {
			return plottableOnly(points), nil
		}

		if !rpc.IsTimeout(err) {
			return nil, fmt.Errorf("fetch site points region=%q: %w", region, err)
		}

		if i < len(siteRowCaps)-1 {
			log.Printf("site fetch timed out region=%s cap=%d retrying cap=%d", region, rowCap, siteRowCaps[i+1])
		}
	}

	log.Printf("site fetch timed out at all caps region=%s", region)
	return []domain.SitePoint{}, nil
}

func plottableOnly(points []domain.SitePoint) []domain.SitePoint {
	out := make([]domain.SitePoint, 0, len(points))
	for _, p := range points {
		if p.Plottable() {
			out = append(out, p)
		}
	}
	return out
}
