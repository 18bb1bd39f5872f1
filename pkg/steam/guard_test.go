package steam

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeAtProperties(t *testing.T) {
	secret := []byte("0123456789abcdefghij")

	t.Run("length and alphabet", func(t *testing.T) {
		at := time.Unix(1700000000, 0)
		for i := 0; i < 50; i++ {
			code := codeAt(secret, at.Add(time.Duration(i)*guardWindow))
			require.Len(t, code, guardCodeLength)
			for _, ch := range code {
				assert.Contains(t, guardAlphabet, string(ch))
			}
		}
	})

	t.Run("stable inside a window", func(t *testing.T) {
		at := time.Unix(1700000010, 0)
		assert.Equal(t, codeAt(secret, at), codeAt(secret, at.Add(15*time.Second)))
	})

	t.Run("rotates across windows", func(t *testing.T) {
		at := time.Unix(1700000000, 0)
		rotated := false
		for i := 1; i <= 5; i++ {
			if codeAt(secret, at) != codeAt(secret, at.Add(time.Duration(i)*guardWindow)) {
				rotated = true
				break
			}
		}
		assert.True(t, rotated, "code never changed over five windows")
	})

	t.Run("different secrets differ", func(t *testing.T) {
		at := time.Unix(1700000000, 0)
		other := []byte("jihgfedcba9876543210")
		assert.NotEqual(t, codeAt(secret, at), codeAt(other, at))
	})
}

func TestParseMaFile(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw := `{"shared_secret":"c2VjcmV0","account_name":"renter1","Session":{"SteamID":76561198000000000}}`
		mf, err := ParseMaFile(raw)
		require.NoError(t, err)
		assert.Equal(t, "renter1", mf.AccountName)

		id, err := mf.SteamID64()
		require.NoError(t, err)
		assert.Equal(t, uint64(76561198000000000), id)
	})

	t.Run("falls back to top-level SteamID", func(t *testing.T) {
		raw := `{"shared_secret":"c2VjcmV0","SteamID":76561198000000001}`
		mf, err := ParseMaFile(raw)
		require.NoError(t, err)

		id, err := mf.SteamID64()
		require.NoError(t, err)
		assert.Equal(t, uint64(76561198000000001), id)
	})

	t.Run("rejects implausible ids", func(t *testing.T) {
		raw := `{"shared_secret":"c2VjcmV0","SteamID":12345}`
		mf, err := ParseMaFile(raw)
		require.NoError(t, err)

		_, err = mf.SteamID64()
		assert.ErrorIs(t, err, ErrNoSteamID)
	})

	t.Run("missing shared secret", func(t *testing.T) {
		_, err := ParseMaFile(`{"account_name":"x"}`)
		assert.Error(t, err)
	})

	t.Run("garbage json", func(t *testing.T) {
		_, err := ParseMaFile(`not json`)
		assert.Error(t, err)
	})
}
