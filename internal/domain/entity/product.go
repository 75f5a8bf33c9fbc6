package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo POS.
// SKU, Barcode, Name y ShortName son únicos a nivel global; la fuente de
// verdad de esa unicidad son los constraints UNIQUE del esquema.
// El stock se maneja por bodega en WarehouseStock; Available es una señal
// independiente de la cantidad en stock.
type Product struct {
	ID          string
	SKU         string // código único de identificación
	Barcode     string // código de barras escaneable, único
	CategoryID  string // vacío si no tiene categoría
	Name        string // nombre descriptivo, único
	ShortName   string // nombre corto para tickets/boletas, único
	Description string
	SalePrice   *decimal.Decimal // nil si no tiene precio definido; nunca negativo
	Available   bool
	ImagePath   string // ruta relativa dentro del media storage; vacío si no tiene
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
