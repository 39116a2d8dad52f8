package permission

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the permission grant repository API
type Repository interface {
	// GetByCustomerID retrieves all grants attached to a customer
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]Grant, error)

	// ReplaceForCustomer replaces the whole grant set of a customer in a
	// single step and returns the new set. Readers never observe a partially
	// replaced set.
	ReplaceForCustomer(ctx context.Context, customerID uuid.UUID, grants []Replace) ([]Grant, error)

	// DeleteForCustomer removes all grants of a customer
	DeleteForCustomer(ctx context.Context, customerID uuid.UUID) error
}

// Replace is used to replace the grant set of a customer
type Replace struct {
	Name   string
	Status GrantStatus
}
