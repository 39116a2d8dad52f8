package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/apptime/portal-server/internal/customer"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CustomerRepository implements the customer.Repository interface using PostgreSQL
type CustomerRepository struct {
	db *pgxpool.Pool
}

var _ customer.Repository = (*CustomerRepository)(nil)

// Get retrieves multiple customers
func (repo *CustomerRepository) Get(ctx context.Context, offset, limit uint64) ([]*customer.Customer, uint64, error) {
	query := squirrel.Select("customer_id", "first_name", "last_name", "email").
		From("customers").
		OrderBy("last_name", "first_name")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	} else {
		query = query.Limit(10)
	}
	sql, vals, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var n uint64
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&n); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return []*customer.Customer{}, 0, nil
	}

	rows, err := repo.db.Query(ctx, sql, vals...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*customer.Customer{}, n, nil
		}
		return nil, 0, err
	}

	customers := []*customer.Customer{}
	for rows.Next() {
		obj := new(customer.Customer)
		if err := rows.Scan(&obj.ID, &obj.FirstName, &obj.LastName, &obj.Email); err != nil {
			return nil, 0, err
		}
		customers = append(customers, obj)
	}

	return customers, n, nil
}

// GetByID retrieves a customer by their ID
func (repo *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row := repo.db.QueryRow(ctx, "SELECT customer_id, first_name, last_name, email FROM customers WHERE customer_id = $1", id)

	obj := new(customer.Customer)
	if err := row.Scan(&obj.ID, &obj.FirstName, &obj.LastName, &obj.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Create creates a new customer
func (repo *CustomerRepository) Create(ctx context.Context, create *customer.Create) (*customer.Customer, error) {
	obj := &customer.Customer{
		ID:        uuid.New(),
		FirstName: create.FirstName,
		LastName:  create.LastName,
		Email:     create.Email,
	}

	_, err := repo.db.Exec(
		ctx,
		"INSERT INTO customers VALUES ($1, $2, $3, $4)",
		obj.ID,
		obj.FirstName,
		obj.LastName,
		obj.Email,
	)
	if err != nil {
		return nil, err
	}

	return obj, nil
}

// Delete deletes a customer by their ID.
// Their permission grants are deleted through the foreign key cascade.
func (repo *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM customers WHERE customer_id = $1", id)
	return err
}
