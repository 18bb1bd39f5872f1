// Package crypto implements column-level encryption for credential fields.
// Values are sealed with AES-256-GCM and stored as "enc:" + base64. When no
// key is configured the cipher degrades to identity: values pass through as
// plaintext and readers return stored plaintext untouched, which keeps old
// rows readable after a key is introduced.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Prefix marks encrypted values at rest.
const Prefix = "enc:"

// ErrNoKey is returned when decryption of an "enc:" value is attempted
// without a configured key.
var ErrNoKey = errors.New("encrypted value present but no encryption key configured")

// Cipher seals and opens credential columns.
type Cipher struct {
	aead cipher.AEAD
}

// New derives a 256-bit key from the passphrase and returns a ready cipher.
// An empty passphrase yields a passthrough cipher.
func New(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return &Cipher{}, nil
	}
	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("init aes: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Enabled reports whether a key is configured.
func (c *Cipher) Enabled() bool {
	return c.aead != nil
}

// Encrypt seals plaintext. Passthrough when no key is configured or the
// value is already sealed.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if c.aead == nil || plaintext == "" || strings.HasPrefix(plaintext, Prefix) {
		return plaintext, nil
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return Prefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a stored value. Values without the enc: prefix are returned
// as-is (plaintext rows written before the key existed).
func (c *Cipher) Decrypt(stored string) (string, error) {
	if !strings.HasPrefix(stored, Prefix) {
		return stored, nil
	}
	if c.aead == nil {
		return "", ErrNoKey
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, Prefix))
	if err != nil {
		return "", fmt.Errorf("decode encrypted value: %w", err)
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns {
		return "", errors.New("encrypted value too short")
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("open encrypted value: %w", err)
	}
	return string(plain), nil
}
