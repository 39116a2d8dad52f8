package cache

import (
	"context"

	"github.com/apptime/portal-server/internal/cache"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/google/uuid"
)

// GrantRepository implements the permission.Repository interface in order to implement caching.
// Grant sets are cached per customer and invalidated as a whole on every write so readers only
// ever see complete sets.
type GrantRepository struct {
	repo  permission.Repository
	cache *cache.ExpiringMap[uuid.UUID, []permission.Grant]
}

var _ permission.Repository = (*GrantRepository)(nil)

// GetByCustomerID retrieves all grants attached to a customer
func (repo *GrantRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]permission.Grant, error) {
	cached, ok := repo.cache.Lookup(customerID)
	if ok {
		return cached, nil
	}
	grants, err := repo.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	repo.cache.Set(customerID, grants)
	return grants, nil
}

// ReplaceForCustomer replaces the whole grant set of a customer
func (repo *GrantRepository) ReplaceForCustomer(ctx context.Context, customerID uuid.UUID, grants []permission.Replace) ([]permission.Grant, error) {
	created, err := repo.repo.ReplaceForCustomer(ctx, customerID, grants)
	if err != nil {
		return nil, err
	}
	repo.cache.Set(customerID, created)
	return created, nil
}

// DeleteForCustomer removes all grants of a customer
func (repo *GrantRepository) DeleteForCustomer(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.repo.DeleteForCustomer(ctx, customerID); err != nil {
		return err
	}
	repo.cache.Unset(customerID)
	return nil
}
