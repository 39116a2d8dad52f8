package storage

import (
	"context"

	"github.com/apptime/portal-server/internal/customer"
	"github.com/apptime/portal-server/internal/permission"
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Customers provides a customer repository implementation
	Customers() customer.Repository

	// Grants provides a permission grant repository implementation
	Grants() permission.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}
