package entity

import "time"

// CashRegister representa una caja o punto de venta de una sucursal.
// UserID referencia al cajero asignado (vacío si está libre); si el usuario
// se elimina, la relación queda en NULL.
type CashRegister struct {
	ID         string
	Number     string // identificador, ej. "CAJ001"
	Name       string // ej. "Caja Principal"
	Active     bool
	IsAssigned bool
	UserID     string // vacío si no hay cajero asignado
	BranchID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
