package domain

import "time"

// TrafficPoint is one day of network traffic for the timeseries charts.
type TrafficPoint struct {
	Day      time.Time
	VolumeGB float64
	Erlangs  float64
}

// AvailabilityRow summarizes availability for one label (a region,
// sub-region or grid, depending on the grouping the procedure applied),
// with the percentage-change columns computed server-side.
type AvailabilityRow struct {
	Label           string
	AvailabilityPct float64
	PreviousPct     float64
	ChangePct       float64
}

// ComplaintRow aggregates complaint tickets for one category.
type ComplaintRow struct {
	Category string
	Total    int
	Resolved int
	Pending  int
}

// RMSRow summarizes RMS power telemetry for one site.
type RMSRow struct {
	SiteName   string
	AvgVoltage float64
	MaxLoadKW  float64
	Alarms     int
}
