package dto

// DashboardSummary resumen del estado del catálogo para el dashboard.
// Se cachea en Redis cuando está configurado.
type DashboardSummary struct {
	TotalProducts     int   `json:"total_products"`
	AvailableProducts int   `json:"available_products"`
	OutOfStock        int   `json:"out_of_stock"`
	Warehouses        int   `json:"warehouses"`
	TotalUnits        int64 `json:"total_units"`
}
