package cache

import (
	"context"
	"time"

	"github.com/apptime/portal-server/internal/cache"
	"github.com/apptime/portal-server/internal/customer"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/apptime/portal-server/internal/storage"
	"github.com/google/uuid"
)

var (
	cacheLifetime        = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Second
)

// Driver represents a storage driver implementation that wraps another one in order to implement in-memory caching
type Driver struct {
	underlying storage.Driver
	customers  *CustomerRepository
	grants     *GrantRepository
}

var _ storage.Driver = (*Driver)(nil)

// New returns a new caching storage driver
func New(underlying storage.Driver) *Driver {
	return &Driver{
		underlying: underlying,
	}
}

// Initialize initializes the caching repositories
func (driver *Driver) Initialize(_ context.Context) error {
	driver.customers = &CustomerRepository{
		repo:  driver.underlying.Customers(),
		cache: cache.NewExpiring[uuid.UUID, *customer.Customer](cacheLifetime, cacheCleanupInterval),
	}
	driver.grants = &GrantRepository{
		repo:  driver.underlying.Grants(),
		cache: cache.NewExpiring[uuid.UUID, []permission.Grant](cacheLifetime, cacheCleanupInterval),
	}
	return nil
}

// Customers provides the caching customer repository implementation
func (driver *Driver) Customers() customer.Repository {
	return driver.customers
}

// Grants provides the caching permission grant repository implementation
func (driver *Driver) Grants() permission.Repository {
	return driver.grants
}

// Close closes the caching repositories and disposes their instances
func (driver *Driver) Close() {
	driver.customers.cache.Close()
	driver.customers = nil
	driver.grants.cache.Close()
	driver.grants = nil
}
