package token

import "github.com/golang-jwt/jwt/v5"

// Claims represents the claim set carried inside a signed session token.
// The subject, role and email claims are mandatory; a token missing any of
// them fails verification as a whole. Unknown claims are dropped.
type Claims struct {
	Role       string `json:"role"`
	Email      string `json:"email"`
	FirstName  string `json:"name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	jwt.RegisteredClaims
}
