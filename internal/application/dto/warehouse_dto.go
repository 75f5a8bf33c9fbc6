package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name      string `json:"name"`
	IsPrimary bool   `json:"is_primary"`
	BranchID  string `json:"branch_id"` // vacío = sin sucursal
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name      *string `json:"name"`
	IsPrimary *bool   `json:"is_primary"`
	BranchID  *string `json:"branch_id"` // "" desasocia la sucursal
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsPrimary bool      `json:"is_primary"`
	BranchID  string    `json:"branch_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
