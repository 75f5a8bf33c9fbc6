package entity

import "time"

// Category representa una categoría de productos de la tienda.
// No se puede eliminar mientras existan productos que la referencien.
type Category struct {
	ID          string
	Name        string // único, no vacío
	Description string
	CreatedAt   time.Time
}
