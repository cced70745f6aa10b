package vault

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 32 bytes of zeros, hex-encoded.
const testKey = "0000000000000000000000000000000000000000000000000000000000000000"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	v, err := New(testKey)
	require.NoError(t, err)

	cases := []string{
		"",
		"sk-1234567890",
		"value with spaces and symbols !@#$%^&*()",
		"unicode: 日本語 émojis 🚀",
		strings.Repeat("x", 4096),
	}
	for _, plaintext := range cases {
		blob, err := v.Encrypt(plaintext)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(blob, "enc:"), "blob should carry enc: prefix")

		got, err := v.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncryptProducesFreshIV(t *testing.T) {
	v, err := New(testKey)
	require.NoError(t, err)

	a, err := v.Encrypt("same input")
	require.NoError(t, err)
	b, err := v.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "two encryptions of the same value must differ")
}

func TestDecryptRejectsTampering(t *testing.T) {
	v, err := New(testKey)
	require.NoError(t, err)

	blob, err := v.Encrypt("secret value")
	require.NoError(t, err)
	parts := strings.Split(strings.TrimPrefix(blob, "enc:"), ":")
	require.Len(t, parts, 3)

	// Flip one byte in each segment in turn.
	for i := 0; i < 3; i++ {
		raw, err := base64.StdEncoding.DecodeString(parts[i])
		require.NoError(t, err)
		raw[0] ^= 0x01
		tampered := make([]string, 3)
		copy(tampered, parts)
		tampered[i] = base64.StdEncoding.EncodeToString(raw)

		_, err = v.Decrypt("enc:" + strings.Join(tampered, ":"))
		assert.ErrorIs(t, err, ErrInvalidCiphertext, "segment %d tampering must fail", i)
	}
}

func TestDecryptRejectsMalformedBlobs(t *testing.T) {
	v, err := New(testKey)
	require.NoError(t, err)

	for _, blob := range []string{
		"enc:",
		"enc:only-one",
		"enc:a:b",
		"enc:!!!:!!!:!!!",
		"gibberish",
	} {
		_, err := v.Decrypt(blob)
		assert.Error(t, err, "blob %q must be rejected", blob)
	}
}

func TestPlaintextFallbackWithoutKey(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	assert.False(t, v.Enabled())

	blob, err := v.Encrypt("my-token")
	require.NoError(t, err)
	assert.Equal(t, "plain:my-token", blob)

	got, err := v.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, "my-token", got)
}

func TestPlainBlobDecryptsEvenWithKey(t *testing.T) {
	v, err := New(testKey)
	require.NoError(t, err)

	got, err := v.Decrypt("plain:legacy-value")
	require.NoError(t, err)
	assert.Equal(t, "legacy-value", got)
}

func TestNewRejectsBadKeys(t *testing.T) {
	_, err := New("not-hex")
	assert.Error(t, err)

	_, err = New("abcd") // too short
	assert.Error(t, err)
}
