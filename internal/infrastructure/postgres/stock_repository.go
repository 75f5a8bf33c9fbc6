package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Si el par no tiene fila devuelve cantidad 0 (la fila se crea lazy en el primer ajuste).
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM warehouse_stock WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.WarehouseStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.WarehouseStock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y bodega).
func (r *StockRepo) Upsert(stock *entity.WarehouseStock) error {
	query := `
		INSERT INTO warehouse_stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.WarehouseID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// SumByProduct suma las cantidades del producto en todas las bodegas (0 si no hay filas).
func (r *StockRepo) SumByProduct(productID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM warehouse_stock WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}

// ListProductsWithStock lista los productos con su cantidad anotada: el total
// agregado si warehouseID es vacío, o la cantidad en esa bodega (0 sin fila).
// Ordena por categoría y luego por nombre, como las vistas de stock.
func (r *StockRepo) ListProductsWithStock(warehouseID string, onlyAvailable bool) ([]entity.ProductStock, error) {
	query := `
		SELECT p.id, p.sku, p.barcode, COALESCE(p.category_id::text, ''), p.name, p.short_name,
		       p.description, p.sale_price, p.available, p.image_path, p.created_at, p.updated_at,
		       COALESCE(c.name, ''),
		       COALESCE(SUM(ws.quantity) FILTER (WHERE $1 = '' OR ws.warehouse_id::text = $1), 0)
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN warehouse_stock ws ON ws.product_id = p.id
		WHERE ($2 = FALSE OR p.available = TRUE)
		GROUP BY p.id, c.name
		ORDER BY COALESCE(c.name, '') NULLS LAST, p.name`
	rows, err := r.q.Query(context.Background(), query, warehouseID, onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductStock
	for rows.Next() {
		var ps entity.ProductStock
		if err := rows.Scan(
			&ps.Product.ID, &ps.Product.SKU, &ps.Product.Barcode, &ps.Product.CategoryID,
			&ps.Product.Name, &ps.Product.ShortName, &ps.Product.Description,
			&ps.Product.SalePrice, &ps.Product.Available, &ps.Product.ImagePath,
			&ps.Product.CreatedAt, &ps.Product.UpdatedAt,
			&ps.CategoryName, &ps.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, ps)
	}
	return list, rows.Err()
}
