package secret

import (
	"encoding/base64"
	"errors"
)

const minSigningSecretLength = 32

// ErrSigningSecretTooShort is returned for signing secrets shorter than 32 bytes
var ErrSigningSecretTooShort = errors.New("the session signing secret has to be at least 32 bytes long")

// DecodeSigningSecret decodes the base64 representation of the session
// signing secret and rejects secrets too short for HMAC-SHA256 to be of any
// value. The decoded secret never shows up in error values or logs.
func DecodeSigningSecret(raw string) ([]byte, error) {
	bytes, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errors.New("the session signing secret is no valid base64 string")
	}
	if len(bytes) < minSigningSecretLength {
		return nil, ErrSigningSecretTooShort
	}
	return bytes, nil
}
