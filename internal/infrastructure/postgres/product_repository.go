package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, barcode, COALESCE(category_id::text, ''), name, short_name, description, sale_price, available, image_path, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Barcode, &p.CategoryID, &p.Name, &p.ShortName,
		&p.Description, &p.SalePrice, &p.Available, &p.ImagePath,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// nullableID convierte "" a NULL para columnas UUID opcionales.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// Create persiste un nuevo producto. La violación de UNIQUE se mapea a ErrDuplicate
// aunque el pre-chequeo del caso de uso haya pasado (carrera asumida).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, barcode, category_id, name, short_name, description, sale_price, available, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Barcode, nullableID(product.CategoryID),
		product.Name, product.ShortName, product.Description, product.SalePrice,
		product.Available, product.ImagePath, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sku, código de barras o nombre ya registrados", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables del producto. created_at nunca se toca.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, barcode = $3, category_id = $4, name = $5, short_name = $6,
		    description = $7, sale_price = $8, available = $9, image_path = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Barcode, nullableID(product.CategoryID),
		product.Name, product.ShortName, product.Description, product.SalePrice,
		product.Available, product.ImagePath, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sku, código de barras o nombre ya registrados", domain.ErrDuplicate)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateImagePath actualiza sólo la ruta de la imagen (segunda fase del attach).
func (r *ProductRepo) UpdateImagePath(id, imagePath string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET image_path = $2, updated_at = now() WHERE id = $1`,
		id, imagePath,
	)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	return nil
}

// SetAvailable cambia sólo la disponibilidad, sin tocar el stock por bodega.
func (r *ProductRepo) SetAvailable(id string, available bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET available = $2, updated_at = now() WHERE id = $1`,
		id, available,
	)
	if err != nil {
		return fmt.Errorf("set product available: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto; las filas de stock lo protegen (23503 -> ErrProtected).
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el producto tiene stock u otras relaciones protegidas", domain.ErrProtected)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) existsBy(column, value, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE ` + column + ` = $1 AND ($2 = '' OR id::text <> $2))`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by %s: %w", column, err)
	}
	return exists, nil
}

// ExistsBySKU chequeo exact-match de unicidad de SKU, con auto-exclusión opcional.
func (r *ProductRepo) ExistsBySKU(sku, excludeID string) (bool, error) {
	return r.existsBy("sku", sku, excludeID)
}

// ExistsByBarcode chequeo exact-match de unicidad de código de barras.
func (r *ProductRepo) ExistsByBarcode(barcode, excludeID string) (bool, error) {
	return r.existsBy("barcode", barcode, excludeID)
}

// ExistsByName chequeo exact-match de unicidad de nombre.
func (r *ProductRepo) ExistsByName(name, excludeID string) (bool, error) {
	return r.existsBy("name", name, excludeID)
}

// ExistsByShortName chequeo exact-match de unicidad de nombre abreviado.
func (r *ProductRepo) ExistsByShortName(shortName, excludeID string) (bool, error) {
	return r.existsBy("short_name", shortName, excludeID)
}

// buildFilter arma el WHERE dinámico compartido por Count y List.
func buildFilter(filter repository.ProductFilter) (string, []any) {
	conds := []string{}
	args := []any{}
	idx := 1
	if filter.OnlyAvailable {
		conds = append(conds, "available = TRUE")
	}
	if filter.CategoryID != "" {
		conds = append(conds, "category_id = $"+strconv.Itoa(idx))
		args = append(args, filter.CategoryID)
		idx++
	}
	if filter.Search != "" {
		p := "$" + strconv.Itoa(idx)
		conds = append(conds, "(name ILIKE '%' || "+p+" || '%' OR sku ILIKE '%' || "+p+" || '%' OR barcode ILIKE '%' || "+p+" || '%')")
		args = append(args, filter.Search)
		idx++
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Count cuenta los productos que cumplen el filtro.
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	where, args := buildFilter(filter)
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// List lista productos filtrados y ordenados. orderBy llega ya validado contra
// la whitelist del caso de uso; nunca proviene directo del request.
func (r *ProductRepo) List(filter repository.ProductFilter, orderBy string, limit, offset int) ([]*entity.Product, error) {
	where, args := buildFilter(filter)
	query := `SELECT ` + productColumns + ` FROM products` + where +
		` ORDER BY ` + orderBy +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
