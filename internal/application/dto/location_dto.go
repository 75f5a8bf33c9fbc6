package dto

// RegionResponse salida de una región.
type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommuneResponse salida de una comuna.
type CommuneResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RegionID string `json:"region_id"`
}
