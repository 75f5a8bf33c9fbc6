package entity

import "time"

// WarehouseStock representa la cantidad de un producto en una bodega
// (una fila por par producto-bodega; se crea lazy en el primer ajuste).
// Quantity nunca es negativa; el esquema lo refuerza con CHECK (quantity >= 0).
type WarehouseStock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}

// ProductStock es la vista de lectura de un producto anotado con su stock
// (total o de una bodega específica, según la consulta).
type ProductStock struct {
	Product      Product
	CategoryName string
	Quantity     int64
}
