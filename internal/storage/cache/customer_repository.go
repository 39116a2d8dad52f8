package cache

import (
	"context"

	"github.com/apptime/portal-server/internal/cache"
	"github.com/apptime/portal-server/internal/customer"
	"github.com/google/uuid"
)

// CustomerRepository implements the customer.Repository interface in order to implement caching
type CustomerRepository struct {
	repo  customer.Repository
	cache *cache.ExpiringMap[uuid.UUID, *customer.Customer]
}

var _ customer.Repository = (*CustomerRepository)(nil)

// Get retrieves multiple customers
func (repo *CustomerRepository) Get(ctx context.Context, offset, limit uint64) ([]*customer.Customer, uint64, error) {
	customers, n, err := repo.repo.Get(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for _, obj := range customers {
		repo.cache.Set(obj.ID, obj)
	}
	return customers, n, nil
}

// GetByID retrieves a customer by their ID
func (repo *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	cached, ok := repo.cache.Lookup(id)
	if ok {
		return cached, nil
	}
	obj, err := repo.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.cache.Set(obj.ID, obj)
	}
	return obj, nil
}

// Create creates a new customer
func (repo *CustomerRepository) Create(ctx context.Context, create *customer.Create) (*customer.Customer, error) {
	obj, err := repo.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	repo.cache.Set(obj.ID, obj)
	return obj, nil
}

// Delete deletes a customer by their ID
func (repo *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.repo.Delete(ctx, id); err != nil {
		return err
	}
	repo.cache.Unset(id)
	return nil
}
