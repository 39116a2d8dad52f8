package postgres

import (
	"context"
	"embed"
	"errors"

	"github.com/apptime/portal-server/internal/customer"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/apptime/portal-server/internal/storage"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4/pgxpool"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Driver represents the PostgreSQL storage driver implementation
type Driver struct {
	dsn       string
	db        *pgxpool.Pool
	customers *CustomerRepository
	grants    *GrantRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty PostgreSQL storage driver.
// Use Initialize to open the database connection and initialize the repository implementations.
func New(dsn string) *Driver {
	return &Driver{
		dsn: dsn,
	}
}

// Initialize opens the database connection, migrates the database and initializes the repository implementations
func (driver *Driver) Initialize(ctx context.Context) error {
	// Perform SQL migrations
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, driver.dsn)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	// Initialize the database connection pool
	pool, err := pgxpool.Connect(ctx, driver.dsn)
	if err != nil {
		return err
	}
	driver.db = pool

	// Initialize the repository implementations
	driver.customers = &CustomerRepository{db: pool}
	driver.grants = &GrantRepository{db: pool}

	return nil
}

// Customers provides the PostgreSQL customer repository implementation
func (driver *Driver) Customers() customer.Repository {
	return driver.customers
}

// Grants provides the PostgreSQL permission grant repository implementation
func (driver *Driver) Grants() permission.Repository {
	return driver.grants
}

// Close discards the repository implementations and closes the database connection
func (driver *Driver) Close() {
	driver.customers = nil
	driver.grants = nil

	driver.db.Close()
	driver.db = nil
}
