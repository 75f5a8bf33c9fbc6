package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, name, is_primary, COALESCE(branch_id::text, ''), created_at, updated_at`

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := row.Scan(&w.ID, &w.Name, &w.IsPrimary, &w.BranchID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste una bodega nueva.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO warehouses (id, name, is_primary, branch_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		warehouse.ID, warehouse.Name, warehouse.IsPrimary, nullableID(warehouse.BranchID),
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la bodega %q ya existe", domain.ErrDuplicate, warehouse.Name)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID. Devuelve nil, nil si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// GetByName busca por nombre exacto (pre-chequeo de unicidad).
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by name: %w", err)
	}
	return w, nil
}

// List lista las bodegas: por sucursal, principal primero, luego nombre.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT w.id, w.name, w.is_primary, COALESCE(w.branch_id::text, ''), w.created_at, w.updated_at
		 FROM warehouses w
		 LEFT JOIN branches b ON b.id = w.branch_id
		 ORDER BY COALESCE(b.name, ''), w.is_primary DESC, w.name`)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Update actualiza los campos de la bodega.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE warehouses SET name = $2, is_primary = $3, branch_id = $4, updated_at = $5 WHERE id = $1`,
		warehouse.ID, warehouse.Name, warehouse.IsPrimary, nullableID(warehouse.BranchID), warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la bodega %q ya existe", domain.ErrDuplicate, warehouse.Name)
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la bodega; las filas de stock la protegen (RESTRICT).
func (r *WarehouseRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la bodega tiene stock registrado", domain.ErrProtected)
		}
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
