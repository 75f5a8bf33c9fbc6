package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por bodega+producto.
// GetForUpdate devuelve una fila con Quantity 0 si el par no existe
// (la fila se materializa recién en el primer Upsert).
type StockRepository interface {
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar dentro de transacciones.
	GetForUpdate(productID, warehouseID string) (*entity.WarehouseStock, error)
	Upsert(stock *entity.WarehouseStock) error

	// SumByProduct suma las cantidades del producto en todas las bodegas (0 si no hay filas).
	SumByProduct(productID string) (int64, error)
	// ListProductsWithStock lista productos anotados con su cantidad: total
	// agregado si warehouseID es vacío, o la cantidad en esa bodega (0 sin fila).
	ListProductsWithStock(warehouseID string, onlyAvailable bool) ([]entity.ProductStock, error)
}
