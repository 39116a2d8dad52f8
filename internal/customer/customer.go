package customer

import (
	"github.com/google/uuid"
)

// Customer represents a customer registered to the booking portal.
// It exists here only as the subject permission grants are attached to;
// appointment and room data is owned by other services.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}
