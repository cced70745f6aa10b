// Package vault provides authenticated encryption for per-tenant third-party
// credentials using AES-256-GCM.
//
// Cipher format: "enc:<iv_b64>:<tag_b64>:<ct_b64>" (standard base64).
// When no key is configured, values pass through as "plain:<plaintext>" and a
// one-time warning is logged.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

const (
	encPrefix   = "enc:"
	plainPrefix = "plain:"

	keySize = 32 // AES-256
	ivSize  = 12 // GCM standard nonce size
	tagSize = 16 // GCM tag size
)

// ErrInvalidCiphertext is returned when a blob's format or authentication
// tag is invalid.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Vault encrypts and decrypts credential values with a deployment-wide key.
// A Vault with no key falls back to tagged plaintext.
type Vault struct {
	aead     cipher.AEAD
	warnOnce sync.Once
}

// New creates a Vault from a hex-encoded 32-byte key. An empty key yields a
// plaintext-passthrough vault (with a one-time warning on first encrypt).
func New(hexKey string) (*Vault, error) {
	if hexKey == "" {
		return &Vault{}, nil
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid hex: %w", err)
	}
	if len(key) != keySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Vault{aead: aead}, nil
}

// Enabled reports whether a key is configured.
func (v *Vault) Enabled() bool {
	return v.aead != nil
}

// Encrypt seals plaintext into the tagged cipher format with a fresh IV.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if v.aead == nil {
		v.warnOnce.Do(func() {
			slog.Warn("No encryption key configured — credentials will be stored in plaintext")
		})
		return plainPrefix + plaintext, nil
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	// Seal appends ciphertext||tag; split them for the tagged format.
	sealed := v.aead.Seal(nil, iv, []byte(plaintext), nil)
	if len(sealed) < tagSize {
		return "", fmt.Errorf("unexpected sealed length %d", len(sealed))
	}
	ct := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	return encPrefix +
		base64.StdEncoding.EncodeToString(iv) + ":" +
		base64.StdEncoding.EncodeToString(tag) + ":" +
		base64.StdEncoding.EncodeToString(ct), nil
}

// Decrypt opens a tagged blob. "plain:" blobs are passed through with the
// prefix stripped. Any format or tag mismatch returns ErrInvalidCiphertext.
func (v *Vault) Decrypt(blob string) (string, error) {
	if strings.HasPrefix(blob, plainPrefix) {
		return strings.TrimPrefix(blob, plainPrefix), nil
	}
	if !strings.HasPrefix(blob, encPrefix) {
		return "", fmt.Errorf("%w: unknown format", ErrInvalidCiphertext)
	}
	if v.aead == nil {
		return "", errors.New("encrypted credential present but no encryption key configured")
	}

	parts := strings.Split(strings.TrimPrefix(blob, encPrefix), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: expected 3 segments, got %d", ErrInvalidCiphertext, len(parts))
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(iv) != ivSize {
		return "", fmt.Errorf("%w: bad IV", ErrInvalidCiphertext)
	}
	tag, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return "", fmt.Errorf("%w: bad tag", ErrInvalidCiphertext)
	}
	ct, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext", ErrInvalidCiphertext)
	}

	plaintext, err := v.aead.Open(nil, iv, append(ct, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", ErrInvalidCiphertext)
	}
	return string(plaintext), nil
}
