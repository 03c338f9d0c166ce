package dto

type SitePointResponse struct {
	SiteID         string   `json:"site_id"`
	SiteName       string   `json:"site_name"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Classification string   `json:"classification"`
	District       string   `json:"district"`
	Grid           string   `json:"grid"`
	Address        string   `json:"address"`
}

type SitesResponse struct {
	Sites []SitePointResponse `json:"sites"`
}

type NeighborResponse struct {
	Site       SitePointResponse `json:"site"`
	DistanceKm float64           `json:"distance_km"`
}

type NeighborsResponse struct {
	Reference SitePointResponse  `json:"reference"`
	Neighbors []NeighborResponse `json:"neighbors"`
}
