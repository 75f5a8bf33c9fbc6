package dto

import "time"

// CreateUserRequest alta de personal (sólo Administrador).
type CreateUserRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstNames   string `json:"first_names"`
	PaternalName string `json:"paternal_name"`
	MaternalName string `json:"maternal_name"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
}

// UpdateUserRequest actualización de personal. Password presente re-hashea.
type UpdateUserRequest struct {
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	FirstNames   *string `json:"first_names"`
	PaternalName *string `json:"paternal_name"`
	MaternalName *string `json:"maternal_name"`
	Phone        *string `json:"phone"`
	Role         *string `json:"role"`
	Active       *bool   `json:"active"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstNames   string    `json:"first_names"`
	PaternalName string    `json:"paternal_name"`
	MaternalName string    `json:"maternal_name"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
