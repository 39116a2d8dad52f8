package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// GrantRepository implements the permission.Repository interface using PostgreSQL
type GrantRepository struct {
	db *pgxpool.Pool
}

var _ permission.Repository = (*GrantRepository)(nil)

// GetByCustomerID retrieves all grants attached to a customer
func (repo *GrantRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]permission.Grant, error) {
	rows, err := repo.db.Query(
		ctx,
		"SELECT grant_id, name, status FROM permission_grants WHERE customer_id = $1 ORDER BY name",
		customerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []permission.Grant{}, nil
		}
		return nil, err
	}

	grants := []permission.Grant{}
	for rows.Next() {
		var obj permission.Grant
		if err := rows.Scan(&obj.ID, &obj.Name, &obj.Status); err != nil {
			return nil, err
		}
		grants = append(grants, obj)
	}

	return grants, nil
}

// ReplaceForCustomer replaces the whole grant set of a customer in a single transaction
func (repo *GrantRepository) ReplaceForCustomer(ctx context.Context, customerID uuid.UUID, grants []permission.Replace) ([]permission.Grant, error) {
	// Begin a new transaction
	tx, err := repo.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Remove the old grant set
	if _, err := tx.Exec(ctx, "DELETE FROM permission_grants WHERE customer_id = $1", customerID); err != nil {
		return nil, err
	}

	// Insert the new grant set
	created := make([]permission.Grant, 0, len(grants))
	if len(grants) > 0 {
		query := squirrel.Insert("permission_grants").Columns("grant_id", "customer_id", "name", "status")
		for _, grant := range grants {
			obj := permission.Grant{
				ID:     uuid.New(),
				Name:   grant.Name,
				Status: grant.Status,
			}
			query = query.Values(obj.ID, customerID, obj.Name, obj.Status)
			created = append(created, obj)
		}
		sql, vals, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, sql, vals...); err != nil {
			return nil, err
		}
	}

	// Commit the changes
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// DeleteForCustomer removes all grants of a customer
func (repo *GrantRepository) DeleteForCustomer(ctx context.Context, customerID uuid.UUID) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM permission_grants WHERE customer_id = $1", customerID)
	return err
}
