package secret

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSigningSecret(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	decoded, err := DecodeSigningSecret(raw)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestDecodeSigningSecretRejectsShortSecrets(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("too-short"))
	_, err := DecodeSigningSecret(raw)
	assert.ErrorIs(t, err, ErrSigningSecretTooShort)
}

func TestDecodeSigningSecretRejectsInvalidBase64(t *testing.T) {
	_, err := DecodeSigningSecret("%%% not base64 %%%")
	assert.Error(t, err)
}
