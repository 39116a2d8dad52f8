package inmem

import (
	"context"

	"github.com/apptime/portal-server/internal/customer"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/apptime/portal-server/internal/storage"
	"github.com/hashicorp/go-memdb"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"customers": {
			Name: "customers",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "ID"},
				},
				"email": {
					Name:         "email",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Email"},
				},
			},
		},
		"grants": {
			Name: "grants",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "ID"},
				},
				"customerID": {
					Name:         "customerID",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "CustomerID"},
				},
			},
		},
	},
}

type customerRow struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

type grantRow struct {
	ID         string
	CustomerID string
	Name       string
	Status     string
}

// Driver represents the in-memory storage driver built using hashicorp/go-memdb.
// It is meant for development setups and tests; nothing survives a restart.
type Driver struct {
	db        *memdb.MemDB
	customers *CustomerRepository
	grants    *GrantRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver
func New() *Driver {
	return &Driver{}
}

// Initialize creates the in-memory database and initializes the repository implementations
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	driver.customers = &CustomerRepository{db: db}
	driver.grants = &GrantRepository{db: db}
	return nil
}

// Customers provides the in-memory customer repository implementation
func (driver *Driver) Customers() customer.Repository {
	return driver.customers
}

// Grants provides the in-memory permission grant repository implementation
func (driver *Driver) Grants() permission.Repository {
	return driver.grants
}

// Close discards the repository implementations and the in-memory database
func (driver *Driver) Close() {
	driver.customers = nil
	driver.grants = nil
	driver.db = nil
}
