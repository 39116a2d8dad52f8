package session

import (
	"testing"
	"time"

	"github.com/apptime/portal-server/internal/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signTestToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return raw
}

func TestAuthorityResolvesVerifiedToken(t *testing.T) {
	raw := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":         "u1",
		"role":        "CUSTOMER",
		"email":       "jane@example.com",
		"name":        "Jane",
		"last_name":   "Doe",
		"customer_id": "c1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	resolution := NewAuthority(token.NewVerifier(testSecret)).Resolve(raw)
	require.Equal(t, StateAuthenticated, resolution.State)
	require.NotNil(t, resolution.Session)
	assert.Equal(t, "u1", resolution.Session.ID)
	assert.Equal(t, RoleCustomer, resolution.Session.Role)
	assert.Equal(t, "jane@example.com", resolution.Session.Email)
	assert.Equal(t, "Jane", resolution.Session.FirstName)
	assert.Equal(t, "Doe", resolution.Session.LastName)
	assert.Equal(t, "c1", resolution.Session.CustomerID)
	assert.Equal(t, raw, resolution.Session.AccessToken)
}

func TestAuthorityCollapsesUnknownRoles(t *testing.T) {
	raw := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":   "u2",
		"role":  "SUPERADMIN",
		"email": "eve@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	resolution := NewAuthority(token.NewVerifier(testSecret)).Resolve(raw)
	require.Equal(t, StateAuthenticated, resolution.State)
	assert.Equal(t, RoleUnknown, resolution.Session.Role)
}

func TestAuthoritySignalsStaleToken(t *testing.T) {
	forged := signTestToken(t, []byte("another-secret-another-secret-ab"), jwt.MapClaims{
		"sub":   "u1",
		"role":  "ADMIN",
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	authority := NewAuthority(token.NewVerifier(testSecret))
	for _, raw := range []string{forged, "garbage"} {
		resolution := authority.Resolve(raw)
		assert.Equal(t, StateStale, resolution.State)
		assert.Nil(t, resolution.Session)
	}
}

func TestAuthorityDistinguishesMissingToken(t *testing.T) {
	resolution := NewAuthority(token.NewVerifier(testSecret)).Resolve("")
	assert.Equal(t, StateUnauthenticated, resolution.State)
	assert.Nil(t, resolution.Session)
}

func TestAuthorityIsIdempotent(t *testing.T) {
	raw := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":   "u1",
		"role":  "ADMIN",
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	authority := NewAuthority(token.NewVerifier(testSecret))
	first := authority.Resolve(raw)
	second := authority.Resolve(raw)
	assert.Equal(t, first.State, second.State)
	assert.Equal(t, first.Session, second.Session)
}
