package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrador = "Administrador"
	RoleJefeLocal     = "Jefe de local"
	RoleCajero        = "Cajero"
)

// ValidRole indica si el rol es uno de los tres reconocidos por el sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdministrador, RoleJefeLocal, RoleCajero:
		return true
	}
	return false
}

// User representa a un miembro del personal (administrador, jefe de local o cajero).
type User struct {
	ID             string
	Username       string // único
	Email          string // único
	PasswordHash   string // bcrypt, nunca plano después de persistir
	FirstNames     string
	PaternalName   string
	MaternalName   string
	Phone          string
	Role           string // RoleAdministrador, RoleJefeLocal o RoleCajero
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
