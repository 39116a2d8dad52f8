package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the customer repository API
type Repository interface {
	// Get retrieves multiple customers
	Get(ctx context.Context, offset, limit uint64) ([]*Customer, uint64, error)

	// GetByID retrieves a customer by their ID
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// Create creates a new customer
	Create(ctx context.Context, create *Create) (*Customer, error)

	// Delete deletes a customer by their ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// Create is used to create a new customer
type Create struct {
	FirstName string
	LastName  string
	Email     string
}
