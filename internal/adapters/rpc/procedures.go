package rpc

import (
	"context"
	"fmt"
	"time"

	"netops-report-service/internal/domain"
	"netops-report-service/internal/platform/obs"
)

// Typed wrappers, one per remote procedure. The procedure names and
// argument keys are a fixed external contract owned by the warehouse;
// every row shape is decoded here and nowhere else.

const dateArg = "2006-01-02"

type regionRow struct {
	Region string `json:"region"`
}

type subregionRow struct {
	SubRegion string `json:"subregion"`
}

type districtRow struct {
	District string `json:"district"`
}

type gridRow struct {
	Grid string `json:"grid"`
}

func (c *Client) Regions(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "rpc.get_regions")(&err)

	var rows []regionRow
	if err := c.Call(ctx, "get_regions", map[string]any{}, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Region)
	}
	return out, nil
}

func (c *Client) SubRegions(ctx context.Context, region string) (_ []string, err error) {
	defer obs.Time(ctx, "rpc.get_subregions")(&err)

	var rows []subregionRow
	args := map[string]any{"region_input": region}
	if err := c.Call(ctx, "get_subregions", args, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.SubRegion)
	}
	return out, nil
}

func (c *Client) Districts(ctx context.Context, subregion string) (_ []string, err error) {
	defer obs.Time(ctx, "rpc.get_districts")(&err)

	var rows []districtRow
	args := map[string]any{"subregion_input": subregion}
	if err := c.Call(ctx, "get_districts", args, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.District)
	}
	return out, nil
}

func (c *Client) Grids(ctx context.Context, district string) (_ []string, err error) {
	defer obs.Time(ctx, "rpc.get_grids")(&err)

	var rows []gridRow
	args := map[string]any{"district_input": district}
	if err := c.Call(ctx, "get_grids", args, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Grid)
	}
	return out, nil
}

type availabilityRow struct {
	Label           string  `json:"label"`
	AvailabilityPct float64 `json:"availability_pct"`
	PrevPct         float64 `json:"prev_pct"`
	ChangePct       float64 `json:"change_pct"`
}

func (c *Client) AvailabilitySummary(ctx context.Context, f domain.FilterState) (_ []domain.AvailabilityRow, err error) {
	defer obs.Time(ctx, "rpc.availability_summary")(&err)

	args := map[string]any{
		"region_input":    f.Region,
		"subregion_input": f.SubRegion,
		"date_from":       dateOrNil(f.DateFrom),
		"date_to":         dateOrNil(f.DateTo),
	}

	var rows []availabilityRow
	if err := c.Call(ctx, "availability_summary", args, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.AvailabilityRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.AvailabilityRow{
			Label:           r.Label,
			AvailabilityPct: r.AvailabilityPct,
			PreviousPct:     r.PrevPct,
			ChangePct:       r.ChangePct,
		})
	}
	return out, nil
}

type trafficRow struct {
	Day      string  `json:"day"`
	VolumeGB float64 `json:"volume_gb"`
	Erlangs  float64 `json:"erlangs"`
}

func (c *Client) TrafficTimeseries(ctx context.Context, f domain.FilterState, from, to time.Time) (_ []domain.TrafficPoint, err error) {
	defer obs.Time(ctx, "rpc.traffic_timeseries")(&err)

	args := map[string]any{
		"region_input":    f.Region,
		"subregion_input": f.SubRegion,
		"site_input":      f.SiteName,
		"date_from":       from.Format(dateArg),
		"date_to":         to.Format(dateArg),
	}

	var rows []trafficRow
	if err := c.Call(ctx, "traffic_timeseries", args, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.TrafficPoint, 0, len(rows))
	for _, r := range rows {
		day, perr := time.Parse(dateArg, r.Day)
		if perr != nil {
			return nil, fmt.Errorf("traffic_timeseries: bad day %q: %w", r.Day, perr)
		}
		out = append(out, domain.TrafficPoint{
			Day:      day,
			VolumeGB: r.VolumeGB,
			Erlangs:  r.Erlangs,
		})
	}
	return out, nil
}

type complaintRow struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Resolved int    `json:"resolved"`
	Pending  int    `json:"pending"`
}

func (c *Client) ComplaintsByCategory(ctx context.Context, f domain.FilterState) (_ []domain.ComplaintRow, err error) {
	defer obs.Time(ctx, "rpc.complaints_by_category")(&err)

	args := map[string]any{
		"region_input":   f.Region,
		"district_input": f.District,
		"date_from":      dateOrNil(f.DateFrom),
		"date_to":        dateOrNil(f.DateTo),
	}

	var rows []complaintRow
	if err := c.Call(ctx, "complaints_by_category", args, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.ComplaintRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ComplaintRow(r))
	}
	return out, nil
}

type rmsRow struct {
	SiteName   string  `json:"site_name"`
	AvgVoltage float64 `json:"avg_voltage"`
	MaxLoadKW  float64 `json:"max_load_kw"`
	Alarms     int     `json:"alarms"`
}

func (c *Client) RMSPowerSummary(ctx context.Context, f domain.FilterState) (_ []domain.RMSRow, err error) {
	defer obs.Time(ctx, "rpc.rms_power_summary")(&err)

	args := map[string]any{
		"region_input": f.Region,
		"grid_input":   f.Grid,
		"date_from":    dateOrNil(f.DateFrom),
		"date_to":      dateOrNil(f.DateTo),
	}

	var rows []rmsRow
	if err := c.Call(ctx, "rms_power_summary", args, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.RMSRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RMSRow(r))
	}
	return out, nil
}

type siteRow struct {
	SiteID         string   `json:"site_id"`
	SiteName       string   `json:"site_name"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Classification string   `json:"classification"`
	District       string   `json:"district"`
	Grid           string   `json:"grid"`
	Address        string   `json:"address"`
}

func (c *Client) SitesByRegion(ctx context.Context, region string, maxRows int) (_ []domain.SitePoint, err error) {
	defer obs.Time(ctx, "rpc.sites_by_region")(&err)

	args := map[string]any{
		"region_input": region,
		"max_rows":     maxRows,
	}

	var rows []siteRow
	if err := c.Call(ctx, "sites_by_region", args, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.SitePoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SitePoint(r))
	}
	return out, nil
}

// dateOrNil formats an optional date bound, keeping SQL NULL for absent
// filters.
func dateOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateArg)
}
