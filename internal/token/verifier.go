package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// ErrVerificationFailed is returned for every kind of token verification failure.
// Malformed, forged, expired and incomplete tokens are deliberately
// indistinguishable to callers to avoid acting as a verification oracle.
var ErrVerificationFailed = errors.New("session token verification failed")

// Verifier validates signed session tokens against a server-held secret.
// Only HMAC-SHA256 is accepted; a token announcing any other algorithm in
// its header fails verification regardless of its signature.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a new token verifier using the given signing secret
func NewVerifier(secret []byte) *Verifier {
	return &Verifier{
		secret: secret,
	}
}

// Verify checks the structure, algorithm, signature and expiry of the given
// raw token in a single step and extracts its claim set. Partial validity
// does not exist: the result is either a complete claim set or
// ErrVerificationFailed. Neither the token nor the secret is ever logged.
func (verifier *Verifier) Verify(raw string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (interface{}, error) {
		return verifier.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		log.Debug().Msg("rejected an unverifiable session token")
		return nil, ErrVerificationFailed
	}

	if claims.Subject == "" || claims.Role == "" || claims.Email == "" {
		log.Debug().Msg("rejected a session token with an incomplete claim set")
		return nil, ErrVerificationFailed
	}

	return claims, nil
}
