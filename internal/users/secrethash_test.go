package users

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretHash_KnownVector(t *testing.T) {
	// HMAC-SHA256(key="key", data="The quick brown fox jumps over the lazy dog"),
	// split so the message is username followed by client id.
	got := SecretHash("dog", "key", "The quick brown fox jumps over the lazy ")
	assert.Equal(t, "97yD9DBThCSxMpjmqm+xQ+9NWaFJRhdZl0edvC0aPNg=", got)
}

func TestSecretHash_Properties(t *testing.T) {
	a := SecretHash("client", "secret", "user_1")
	b := SecretHash("client", "secret", "user_1")
	c := SecretHash("client", "secret", "user_2")

	assert.Equal(t, a, b, "deterministic for identical inputs")
	assert.NotEqual(t, a, c, "distinct per username")

	raw, err := base64.StdEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, 32, "SHA-256 digest length")
}
