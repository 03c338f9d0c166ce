package dto

type PicklistResponse struct {
	Values []string `json:"values"`
}

type FilterOptionsResponse struct {
	SubRegions []string `json:"subregions"`
	Districts  []string `json:"districts"`
}

type AvailabilityRowResponse struct {
	Label           string  `json:"label"`
	AvailabilityPct float64 `json:"availability_pct"`
	PreviousPct     float64 `json:"prev_pct"`
	ChangePct       float64 `json:"change_pct"`
}

type AvailabilityResponse struct {
	Rows []AvailabilityRowResponse `json:"rows"`
}

type TrafficPointResponse struct {
	Day      string  `json:"day"`
	VolumeGB float64 `json:"volume_gb"`
	Erlangs  float64 `json:"erlangs"`
}

type TrafficResponse struct {
	Points []TrafficPointResponse `json:"points"`
}

type ComplaintRowResponse struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Resolved int    `json:"resolved"`
	Pending  int    `json:"pending"`
}

type ComplaintsResponse struct {
	Rows []ComplaintRowResponse `json:"rows"`
}

type RMSRowResponse struct {
	SiteName   string  `json:"site_name"`
	AvgVoltage float64 `json:"avg_voltage"`
	MaxLoadKW  float64 `json:"max_load_kw"`
	Alarms     int     `json:"alarms"`
}

type RMSResponse struct {
	Rows []RMSRowResponse `json:"rows"`
}
