package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente. El RUT no es único.
type CreateCustomerRequest struct {
	RUT          string `json:"rut"`
	FirstNames   string `json:"first_names"`
	PaternalName string `json:"paternal_name"`
	MaternalName string `json:"maternal_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	CommuneID    string `json:"commune_id"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	RUT          *string `json:"rut"`
	FirstNames   *string `json:"first_names"`
	PaternalName *string `json:"paternal_name"`
	MaternalName *string `json:"maternal_name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	CommuneID    *string `json:"commune_id"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID           string    `json:"id"`
	RUT          string    `json:"rut"`
	FirstNames   string    `json:"first_names"`
	PaternalName string    `json:"paternal_name"`
	MaternalName string    `json:"maternal_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	CommuneID    string    `json:"commune_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
