package inmem

import (
	"context"

	"github.com/apptime/portal-server/internal/customer"
	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

// CustomerRepository implements the customer.Repository interface using hashicorp/go-memdb
type CustomerRepository struct {
	db *memdb.MemDB
}

var _ customer.Repository = (*CustomerRepository)(nil)

// Get retrieves multiple customers
func (repo *CustomerRepository) Get(_ context.Context, offset, limit uint64) ([]*customer.Customer, uint64, error) {
	if limit == 0 {
		limit = 10
	}

	txn := repo.db.Txn(false)
	it, err := txn.Get("customers", "id")
	if err != nil {
		return nil, 0, err
	}

	var n uint64
	customers := []*customer.Customer{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if n >= offset && uint64(len(customers)) < limit {
			converted, err := rowToCustomer(obj.(*customerRow))
			if err != nil {
				return nil, 0, err
			}
			customers = append(customers, converted)
		}
		n++
	}

	return customers, n, nil
}

// GetByID retrieves a customer by their ID
func (repo *CustomerRepository) GetByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First("customers", "id", id.String())
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return rowToCustomer(obj.(*customerRow))
}

// Create creates a new customer
func (repo *CustomerRepository) Create(_ context.Context, create *customer.Create) (*customer.Customer, error) {
	obj := &customer.Customer{
		ID:        uuid.New(),
		FirstName: create.FirstName,
		LastName:  create.LastName,
		Email:     create.Email,
	}

	txn := repo.db.Txn(true)
	defer txn.Abort()
	err := txn.Insert("customers", &customerRow{
		ID:        obj.ID.String(),
		FirstName: obj.FirstName,
		LastName:  obj.LastName,
		Email:     obj.Email,
	})
	if err != nil {
		return nil, err
	}
	txn.Commit()

	return obj, nil
}

// Delete deletes a customer by their ID, including all of their permission grants
func (repo *CustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("customers", "id", id.String()); err != nil {
		return err
	}
	if _, err := txn.DeleteAll("grants", "customerID", id.String()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func rowToCustomer(row *customerRow) (*customer.Customer, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	return &customer.Customer{
		ID:        id,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
	}, nil
}
