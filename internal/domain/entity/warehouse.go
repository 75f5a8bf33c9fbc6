package entity

import "time"

// Warehouse representa una bodega donde se almacena stock, típicamente
// asociada a una sucursal. BranchID vacío significa bodega sin sucursal
// (la sucursal fue eliminada o aún no se asigna).
type Warehouse struct {
	ID        string
	Name      string // único
	IsPrimary bool   // bodega principal
	BranchID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
