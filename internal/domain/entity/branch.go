package entity

import "time"

// Branch representa una sucursal física de un Commerce.
// ManagerID referencia al jefe de local asignado (vacío si no tiene).
type Branch struct {
	ID             string
	Name           string // nombre identificatorio, único
	Email          string
	Phone          string
	Address        string
	IsHeadquarters bool   // casa matriz
	IsAssigned     bool   // tiene jefe de local asignado
	ManagerID      string // vacío si no hay jefe asignado
	Active         bool
	CommerceID     string
	CommuneID      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
