package inmem

import (
	"context"

	"github.com/apptime/portal-server/internal/permission"
	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

// GrantRepository implements the permission.Repository interface using hashicorp/go-memdb
type GrantRepository struct {
	db *memdb.MemDB
}

var _ permission.Repository = (*GrantRepository)(nil)

// GetByCustomerID retrieves all grants attached to a customer
func (repo *GrantRepository) GetByCustomerID(_ context.Context, customerID uuid.UUID) ([]permission.Grant, error) {
	txn := repo.db.Txn(false)
	it, err := txn.Get("grants", "customerID", customerID.String())
	if err != nil {
		return nil, err
	}

	grants := []permission.Grant{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		converted, err := rowToGrant(obj.(*grantRow))
		if err != nil {
			return nil, err
		}
		grants = append(grants, converted)
	}

	return grants, nil
}

// ReplaceForCustomer replaces the whole grant set of a customer in a single transaction
func (repo *GrantRepository) ReplaceForCustomer(_ context.Context, customerID uuid.UUID, grants []permission.Replace) ([]permission.Grant, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll("grants", "customerID", customerID.String()); err != nil {
		return nil, err
	}

	created := make([]permission.Grant, 0, len(grants))
	for _, grant := range grants {
		obj := permission.Grant{
			ID:     uuid.New(),
			Name:   grant.Name,
			Status: grant.Status,
		}
		err := txn.Insert("grants", &grantRow{
			ID:         obj.ID.String(),
			CustomerID: customerID.String(),
			Name:       obj.Name,
			Status:     string(obj.Status),
		})
		if err != nil {
			return nil, err
		}
		created = append(created, obj)
	}

	txn.Commit()
	return created, nil
}

// DeleteForCustomer removes all grants of a customer
func (repo *GrantRepository) DeleteForCustomer(_ context.Context, customerID uuid.UUID) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("grants", "customerID", customerID.String()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func rowToGrant(row *grantRow) (permission.Grant, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return permission.Grant{}, err
	}
	return permission.Grant{
		ID:     id,
		Name:   row.Name,
		Status: permission.GrantStatus(row.Status),
	}, nil
}
