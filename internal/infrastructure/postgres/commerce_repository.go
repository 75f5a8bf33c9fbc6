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

var _ repository.CommerceRepository = (*CommerceRepo)(nil)

// CommerceRepo implementación de CommerceRepository sobre PostgreSQL.
type CommerceRepo struct {
	q Querier
}

// NewCommerceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommerceRepository(q Querier) *CommerceRepo {
	return &CommerceRepo{q: q}
}

func scanCommerce(row pgx.Row) (*entity.Commerce, error) {
	var c entity.Commerce
	if err := row.Scan(&c.ID, &c.Name, &c.LegalName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un comercio nuevo. La razón social es única.
func (r *CommerceRepo) Create(commerce *entity.Commerce) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO commerces (id, name, legal_name, email, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		commerce.ID, commerce.Name, commerce.LegalName, commerce.Email, commerce.Phone,
		commerce.CreatedAt, commerce.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la razón social %q ya está registrada", domain.ErrDuplicate, commerce.LegalName)
		}
		return fmt.Errorf("insert commerce: %w", err)
	}
	return nil
}

// GetByID obtiene un comercio por ID. Devuelve nil, nil si no existe.
func (r *CommerceRepo) GetByID(id string) (*entity.Commerce, error) {
	c, err := scanCommerce(r.q.QueryRow(context.Background(),
		`SELECT id, name, legal_name, email, phone, created_at, updated_at FROM commerces WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commerce: %w", err)
	}
	return c, nil
}

// GetByLegalName busca por razón social exacta (pre-chequeo de unicidad).
func (r *CommerceRepo) GetByLegalName(legalName string) (*entity.Commerce, error) {
	c, err := scanCommerce(r.q.QueryRow(context.Background(),
		`SELECT id, name, legal_name, email, phone, created_at, updated_at FROM commerces WHERE legal_name = $1`, legalName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commerce by legal name: %w", err)
	}
	return c, nil
}

// List lista los comercios ordenados por nombre de fantasía.
func (r *CommerceRepo) List() ([]*entity.Commerce, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, legal_name, email, phone, created_at, updated_at FROM commerces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list commerces: %w", err)
	}
	defer rows.Close()

	var list []*entity.Commerce
	for rows.Next() {
		c, err := scanCommerce(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commerce: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos del comercio.
func (r *CommerceRepo) Update(commerce *entity.Commerce) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE commerces SET name = $2, legal_name = $3, email = $4, phone = $5, updated_at = $6 WHERE id = $1`,
		commerce.ID, commerce.Name, commerce.LegalName, commerce.Email, commerce.Phone, commerce.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la razón social %q ya está registrada", domain.ErrDuplicate, commerce.LegalName)
		}
		return fmt.Errorf("update commerce: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el comercio; sus sucursales lo protegen (RESTRICT).
func (r *CommerceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM commerces WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el comercio tiene sucursales asociadas", domain.ErrProtected)
		}
		return fmt.Errorf("delete commerce: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
