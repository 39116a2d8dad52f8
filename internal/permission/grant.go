package permission

import (
	"github.com/google/uuid"
)

// GrantStatus indicates whether a grant currently confers access
type GrantStatus string

const (
	GrantStatusActive   GrantStatus = "active"
	GrantStatusInactive GrantStatus = "inactive"
)

// Grant represents a single named permission attached to a customer.
// Grant sets are replaced wholesale and never mutated in place.
type Grant struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Status GrantStatus `json:"status"`
}

// ActiveNames collects the names of all active grants into a lookup set.
// Inactive grants are treated as absent for allow decisions.
func ActiveNames(grants []Grant) map[string]struct{} {
	names := make(map[string]struct{}, len(grants))
	for _, grant := range grants {
		if grant.Status == GrantStatusActive {
			names[grant.Name] = struct{}{}
		}
	}
	return names
}
