package session

import (
	"github.com/apptime/portal-server/internal/token"
)

// State classifies the outcome of resolving a raw session token.
type State int

const (
	// StateUnauthenticated means no token was supplied at all.
	StateUnauthenticated State = iota

	// StateAuthenticated means the token verified and a trusted session was derived.
	StateAuthenticated

	// StateStale means a token was supplied but is no longer trustworthy
	// (expired, forged, malformed or incomplete). Callers are expected to
	// trigger an explicit re-authentication flow rather than rendering a
	// generic error.
	StateStale
)

// Resolution represents the tagged result of resolving a raw session token.
// Session is non-nil if and only if State is StateAuthenticated.
type Resolution struct {
	State   State
	Session *Session
}

// Authority derives trusted sessions from raw signed tokens
type Authority struct {
	verifier *token.Verifier
}

// NewAuthority creates a new session authority on top of the given token verifier
func NewAuthority(verifier *token.Verifier) *Authority {
	return &Authority{
		verifier: verifier,
	}
}

// Resolve verifies the given raw token and maps its claim set onto a session.
// Verification failures of any kind surface as StateStale; the caller never
// learns why a token was rejected. Resolve is idempotent and side-effect
// free: calling it twice with the same token yields the same result.
func (authority *Authority) Resolve(rawToken string) Resolution {
	if rawToken == "" {
		return Resolution{State: StateUnauthenticated}
	}

	claims, err := authority.verifier.Verify(rawToken)
	if err != nil {
		return Resolution{State: StateStale}
	}

	return Resolution{
		State: StateAuthenticated,
		Session: &Session{
			ID:          claims.Subject,
			FirstName:   claims.FirstName,
			LastName:    claims.LastName,
			Email:       claims.Email,
			Role:        ParseRole(claims.Role),
			CustomerID:  claims.CustomerID,
			AccessToken: rawToken,
		},
	}
}
