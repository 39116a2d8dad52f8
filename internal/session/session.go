package session

// Session represents the trusted identity derived from a successfully verified session token.
// It is constructed exclusively by the Authority, is immutable and lives for a single
// authenticated interaction. It is never persisted.
type Session struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	CustomerID string `json:"customer_id,omitempty"`

	// AccessToken is the verified bearer credential itself.
	// It is retained only to be forwarded to downstream calls and is never
	// serialized into API responses.
	AccessToken string `json:"-"`
}
