package dto

import "time"

// CreateCommerceRequest entrada para crear un comercio.
type CreateCommerceRequest struct {
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateCommerceRequest entrada para actualizar un comercio.
type UpdateCommerceRequest struct {
	Name      *string `json:"name"`
	LegalName *string `json:"legal_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// CommerceResponse salida de un comercio.
type CommerceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LegalName string    `json:"legal_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
