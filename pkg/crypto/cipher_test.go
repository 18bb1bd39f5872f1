package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_RoundTrip(t *testing.T) {
	c, err := New("test-passphrase")
	require.NoError(t, err)
	require.True(t, c.Enabled())

	sealed, err := c.Encrypt("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, Prefix))
	assert.NotContains(t, sealed, "hunter2")

	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plain)
}

func TestCipher_EncryptIsIdempotentOnSealedValues(t *testing.T) {
	c, err := New("k")
	require.NoError(t, err)

	sealed, err := c.Encrypt("secret")
	require.NoError(t, err)

	again, err := c.Encrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, sealed, again)
}

func TestCipher_Passthrough(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	t.Run("encrypt keeps plaintext", func(t *testing.T) {
		out, err := c.Encrypt("plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", out)
	})

	t.Run("decrypt keeps plaintext", func(t *testing.T) {
		out, err := c.Decrypt("plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", out)
	})

	t.Run("decrypt of sealed value fails without key", func(t *testing.T) {
		_, err := c.Decrypt(Prefix + "Zm9v")
		assert.ErrorIs(t, err, ErrNoKey)
	})
}

func TestCipher_PlaintextRowsReadableWithKey(t *testing.T) {
	c, err := New("rotated-in-later")
	require.NoError(t, err)

	out, err := c.Decrypt("legacy-plaintext-password")
	require.NoError(t, err)
	assert.Equal(t, "legacy-plaintext-password", out)
}

func TestCipher_WrongKeyFails(t *testing.T) {
	c1, err := New("key-one")
	require.NoError(t, err)
	c2, err := New("key-two")
	require.NoError(t, err)

	sealed, err := c1.Encrypt("secret")
	require.NoError(t, err)

	_, err = c2.Decrypt(sealed)
	assert.Error(t, err)
}
