package dto

import "time"

// CreateRegisterRequest alta de caja registradora en una sucursal.
type CreateRegisterRequest struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	BranchID string `json:"branch_id"`
}

// UpdateRegisterRequest actualización de una caja.
type UpdateRegisterRequest struct {
	Number *string `json:"number"`
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// AssignCashierRequest asignación de cajero a una caja. UserID vacío libera.
type AssignCashierRequest struct {
	UserID string `json:"user_id"`
}

// RegisterResponse salida de una caja registradora.
type RegisterResponse struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	IsAssigned bool      `json:"is_assigned"`
	UserID     string    `json:"user_id,omitempty"`
	BranchID   string    `json:"branch_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
