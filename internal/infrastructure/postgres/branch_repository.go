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

var _ repository.BranchRepository = (*BranchRepo)(nil)

const branchColumns = `id, name, email, phone, address, is_headquarters, is_assigned,
	COALESCE(manager_id::text, ''), active, commerce_id, commune_id, created_at, updated_at`

// BranchRepo implementación de BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

func scanBranch(row pgx.Row) (*entity.Branch, error) {
	var b entity.Branch
	err := row.Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address, &b.IsHeadquarters,
		&b.IsAssigned, &b.ManagerID, &b.Active, &b.CommerceID, &b.CommuneID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste una sucursal nueva.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO branches (id, name, email, phone, address, is_headquarters, is_assigned,
		                       manager_id, active, commerce_id, commune_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		branch.ID, branch.Name, branch.Email, branch.Phone, branch.Address,
		branch.IsHeadquarters, branch.IsAssigned, nullableID(branch.ManagerID),
		branch.Active, branch.CommerceID, branch.CommuneID, branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la sucursal %q ya existe", domain.ErrDuplicate, branch.Name)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: comercio o comuna inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID. Devuelve nil, nil si no existe.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	b, err := scanBranch(r.q.QueryRow(context.Background(),
		`SELECT `+branchColumns+` FROM branches WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

// GetByName busca por nombre exacto (pre-chequeo de unicidad).
func (r *BranchRepo) GetByName(name string) (*entity.Branch, error) {
	b, err := scanBranch(r.q.QueryRow(context.Background(),
		`SELECT `+branchColumns+` FROM branches WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by name: %w", err)
	}
	return b, nil
}

// List lista sucursales, casa matriz primero y luego por nombre.
func (r *BranchRepo) List(filter repository.BranchFilter) ([]*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE ($1 = FALSE OR active = TRUE)
		AND ($2 = FALSE OR manager_id IS NULL)
		ORDER BY is_headquarters DESC, name`
	rows, err := r.q.Query(context.Background(), query, filter.OnlyActive, filter.OnlyUnassigned)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update actualiza los campos de la sucursal (incluida la asignación de jefe).
func (r *BranchRepo) Update(branch *entity.Branch) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE branches
		 SET name = $2, email = $3, phone = $4, address = $5, is_headquarters = $6,
		     is_assigned = $7, manager_id = $8, active = $9, commerce_id = $10,
		     commune_id = $11, updated_at = $12
		 WHERE id = $1`,
		branch.ID, branch.Name, branch.Email, branch.Phone, branch.Address,
		branch.IsHeadquarters, branch.IsAssigned, nullableID(branch.ManagerID),
		branch.Active, branch.CommerceID, branch.CommuneID, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: nombre de sucursal o jefe ya asignado", domain.ErrDuplicate)
		}
		return fmt.Errorf("update branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ManagerAssigned indica si el usuario ya tiene una sucursal activa asignada.
func (r *BranchRepo) ManagerAssigned(userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM branches WHERE manager_id = $1 AND active = TRUE)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("manager assigned: %w", err)
	}
	return exists, nil
}

// Delete elimina la sucursal; cajas y otras relaciones la protegen.
func (r *BranchRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la sucursal tiene cajas u otras relaciones", domain.ErrProtected)
		}
		return fmt.Errorf("delete branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
