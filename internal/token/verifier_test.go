package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signTestToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return raw
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":         "u1",
		"role":        "CUSTOMER",
		"email":       "jane@example.com",
		"name":        "Jane",
		"last_name":   "Doe",
		"customer_id": "c1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
}

func TestVerifierAcceptsValidToken(t *testing.T) {
	raw := signTestToken(t, jwt.SigningMethodHS256, testSecret, validClaims())

	claims, err := NewVerifier(testSecret).Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "CUSTOMER", claims.Role)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
	assert.Equal(t, "c1", claims.CustomerID)
}

func TestVerifierRejectsBadSignature(t *testing.T) {
	raw := signTestToken(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-ab"), validClaims())

	claims, err := NewVerifier(testSecret).Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerifierRejectsForeignAlgorithms(t *testing.T) {
	// Structurally valid tokens signed with anything but HS256 have to fail,
	// including an unsigned 'none' token.
	hs512 := signTestToken(t, jwt.SigningMethodHS512, testSecret, validClaims())
	none := signTestToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())

	verifier := NewVerifier(testSecret)
	for _, raw := range []string{hs512, none} {
		claims, err := verifier.Verify(raw)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrVerificationFailed)
	}
}

func TestVerifierRejectsExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	raw := signTestToken(t, jwt.SigningMethodHS256, testSecret, claims)

	_, err := NewVerifier(testSecret).Verify(raw)
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerifierRejectsMalformedTokens(t *testing.T) {
	verifier := NewVerifier(testSecret)
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		claims, err := verifier.Verify(raw)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrVerificationFailed)
	}
}

func TestVerifierRejectsIncompleteClaimSets(t *testing.T) {
	verifier := NewVerifier(testSecret)
	for _, missing := range []string{"sub", "role", "email"} {
		claims := validClaims()
		delete(claims, missing)
		raw := signTestToken(t, jwt.SigningMethodHS256, testSecret, claims)

		_, err := verifier.Verify(raw)
		assert.ErrorIs(t, err, ErrVerificationFailed, "claim %s missing", missing)
	}
}
