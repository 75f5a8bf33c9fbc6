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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, rut, first_names, paternal_name, maternal_name, phone, email,
	address, COALESCE(commune_id::text, ''), created_at, updated_at`

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.RUT, &c.FirstNames, &c.PaternalName, &c.MaternalName,
		&c.Phone, &c.Email, &c.Address, &c.CommuneID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente nuevo. El RUT no es único.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO customers (id, rut, first_names, paternal_name, maternal_name, phone,
		                        email, address, commune_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		customer.ID, customer.RUT, customer.FirstNames, customer.PaternalName,
		customer.MaternalName, customer.Phone, customer.Email, customer.Address,
		nullableID(customer.CommuneID), customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: comuna inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista clientes ordenados por apellidos; search filtra por RUT o apellidos (parcial).
func (r *CustomerRepo) List(search string, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
		WHERE ($1 = '' OR rut ILIKE '%' || $1 || '%'
		       OR paternal_name ILIKE '%' || $1 || '%'
		       OR maternal_name ILIKE '%' || $1 || '%')
		ORDER BY paternal_name, maternal_name, first_names
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE customers
		 SET rut = $2, first_names = $3, paternal_name = $4, maternal_name = $5,
		     phone = $6, email = $7, address = $8, commune_id = $9, updated_at = $10
		 WHERE id = $1`,
		customer.ID, customer.RUT, customer.FirstNames, customer.PaternalName,
		customer.MaternalName, customer.Phone, customer.Email, customer.Address,
		nullableID(customer.CommuneID), customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el cliente tiene relaciones protegidas", domain.ErrProtected)
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
