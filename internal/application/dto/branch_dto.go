package dto

import "time"

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	IsHeadquarters bool   `json:"is_headquarters"`
	CommerceID     string `json:"commerce_id"`
	CommuneID      string `json:"commune_id"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	IsHeadquarters *bool   `json:"is_headquarters"`
	Active         *bool   `json:"active"`
	CommuneID      *string `json:"commune_id"`
}

// AssignManagerRequest asignación de jefe de local a una sucursal.
// UserID vacío quita la asignación actual.
type AssignManagerRequest struct {
	UserID string `json:"user_id"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	IsHeadquarters bool      `json:"is_headquarters"`
	IsAssigned     bool      `json:"is_assigned"`
	ManagerID      string    `json:"manager_id,omitempty"`
	Active         bool      `json:"active"`
	CommerceID     string    `json:"commerce_id"`
	CommuneID      string    `json:"commune_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
