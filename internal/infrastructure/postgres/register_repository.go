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

var _ repository.RegisterRepository = (*RegisterRepo)(nil)

const registerColumns = `id, number, name, active, is_assigned,
	COALESCE(user_id::text, ''), branch_id, created_at, updated_at`

// RegisterRepo implementación de RegisterRepository sobre PostgreSQL.
type RegisterRepo struct {
	q Querier
}

func NewRegisterRepository(q Querier) *RegisterRepo {
	return &RegisterRepo{q: q}
}

func scanRegister(row pgx.Row) (*entity.CashRegister, error) {
	var c entity.CashRegister
	err := row.Scan(
		&c.ID, &c.Number, &c.Name, &c.Active, &c.IsAssigned,
		&c.UserID, &c.BranchID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RegisterRepo) Create(register *entity.CashRegister) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO cash_registers (id, number, name, active, is_assigned,
		                             user_id, branch_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		register.ID, register.Number, register.Name, register.Active,
		register.IsAssigned, nullableID(register.UserID), register.BranchID,
		register.CreatedAt, register.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: sucursal o usuario inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert cash register: %w", err)
	}
	return nil
}

func (r *RegisterRepo) GetByID(id string) (*entity.CashRegister, error) {
	c, err := scanRegister(r.q.QueryRow(context.Background(),
		`SELECT `+registerColumns+` FROM cash_registers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash register: %w", err)
	}
	return c, nil
}

func (r *RegisterRepo) List(branchID string) ([]*entity.CashRegister, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+registerColumns+` FROM cash_registers
		 WHERE ($1 = '' OR branch_id::text = $1)
		 ORDER BY branch_id, number`, branchID)
	if err != nil {
		return nil, fmt.Errorf("list cash registers: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashRegister
	for rows.Next() {
		c, err := scanRegister(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash register: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *RegisterRepo) Update(register *entity.CashRegister) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE cash_registers
		 SET number = $2, name = $3, active = $4, is_assigned = $5,
		     user_id = $6, branch_id = $7, updated_at = $8
		 WHERE id = $1`,
		register.ID, register.Number, register.Name, register.Active,
		register.IsAssigned, nullableID(register.UserID), register.BranchID,
		register.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: sucursal o usuario inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update cash register: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RegisterRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM cash_registers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cash register: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
