package dto

import "time"

// StockItemResponse un producto anotado con su cantidad (total o por bodega).
type StockItemResponse struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name,omitempty"`
	Available    bool   `json:"available"`
	Quantity     int64  `json:"quantity"`
}

// StockListResponse salida de la consulta de stock.
type StockListResponse struct {
	WarehouseID string              `json:"warehouse_id,omitempty"` // vacío = todas
	Items       []StockItemResponse `json:"items"`
	TotalUnits  int64               `json:"total_units"`
}

// AdjustLine una línea del ajuste masivo: delta con signo sobre un producto.
type AdjustLine struct {
	ProductID string `json:"product_id"`
	Delta     int64  `json:"delta"`
}

// AdjustStockRequest ajuste masivo sobre una bodega.
type AdjustStockRequest struct {
	WarehouseID string       `json:"warehouse_id"`
	Lines       []AdjustLine `json:"lines"`
}

// AdjustLineResult resultado de una línea: aplicada o rechazada con motivo.
// Quantity es la cantidad resultante (la vigente si la línea fue rechazada).
type AdjustLineResult struct {
	ProductID string `json:"product_id"`
	Applied   bool   `json:"applied"`
	Reason    string `json:"reason,omitempty"`
	Quantity  int64  `json:"quantity"`
}

// AdjustStockResponse resultado por línea del ajuste masivo.
type AdjustStockResponse struct {
	WarehouseID string             `json:"warehouse_id"`
	Results     []AdjustLineResult `json:"results"`
	AppliedAt   time.Time          `json:"applied_at"`
}

// AggregateStockResponse total agregado de un producto en todas las bodegas.
type AggregateStockResponse struct {
	ProductID string `json:"product_id"`
	Total     int64  `json:"total"`
}
