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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, first_names, paternal_name,
	maternal_name, phone, role, active, created_at, updated_at`

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstNames,
		&u.PaternalName, &u.MaternalName, &u.Phone, &u.Role, &u.Active,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario nuevo (username y email únicos).
func (r *UserRepo) Create(user *entity.User) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, first_names, paternal_name,
		                    maternal_name, phone, role, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstNames,
		user.PaternalName, user.MaternalName, user.Phone, user.Role, user.Active,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username o email ya registrados", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByUsername busca por username exacto. Devuelve nil, nil si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

// FindByEmail busca por email exacto. Devuelve nil, nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// List lista usuarios por rol (vacío = todos), ordenados por apellidos y nombres.
func (r *UserRepo) List(role string, onlyActive bool) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE ($1 = '' OR role = $1) AND ($2 = FALSE OR active = TRUE)
		ORDER BY paternal_name, maternal_name, first_names`
	rows, err := r.q.Query(context.Background(), query, role, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza los datos del usuario (incluido hash de password si cambió).
func (r *UserRepo) Update(user *entity.User) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users
		 SET username = $2, email = $3, password_hash = $4, first_names = $5,
		     paternal_name = $6, maternal_name = $7, phone = $8, role = $9,
		     active = $10, updated_at = $11
		 WHERE id = $1`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstNames,
		user.PaternalName, user.MaternalName, user.Phone, user.Role, user.Active,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username o email ya registrados", domain.ErrDuplicate)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
