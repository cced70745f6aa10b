package auth

import (
	"context"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/models"
)

const testSecret = "unit-test-shared-secret"

func signHS256(t *testing.T, mutate func(b *jwt.Builder)) string {
	t.Helper()

	b := jwt.NewBuilder().
		Subject("user-123").
		Claim("email", "dev@example.com").
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour))
	if mutate != nil {
		mutate(b)
	}
	token, err := b.Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(testSecret)))
	require.NoError(t, err)
	return string(signed)
}

func TestVerifyHS256RoundTrip(t *testing.T) {
	v, err := NewVerifier(context.Background(), Options{Secret: testSecret})
	require.NoError(t, err)

	ident, err := v.Verify(context.Background(), signHS256(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "user-123", ident.UserID)
	assert.Equal(t, "dev@example.com", ident.Email)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	v, err := NewVerifier(context.Background(), Options{Secret: "a different secret"})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), signHS256(t, nil))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	v, err := NewVerifier(context.Background(), Options{Secret: testSecret})
	require.NoError(t, err)

	expired := signHS256(t, func(b *jwt.Builder) {
		b.Expiration(time.Now().Add(-time.Minute))
	})
	_, err = v.Verify(context.Background(), expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresSubject(t *testing.T) {
	v, err := NewVerifier(context.Background(), Options{Secret: testSecret})
	require.NoError(t, err)

	noSub := signHS256(t, func(b *jwt.Builder) {
		b.Subject("")
	})
	_, err = v.Verify(context.Background(), noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	v, err := NewVerifier(context.Background(), Options{Secret: testSecret})
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestNewVerifierRequiresSomeConfig(t *testing.T) {
	_, err := NewVerifier(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrMisconfigured)

	v, err := NewVerifier(context.Background(), Options{InsecureSkipVerify: true})
	require.NoError(t, err)

	// Unsigned claims are accepted only in insecure mode.
	ident, err := v.Verify(context.Background(), signHS256(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "user-123", ident.UserID)
}

func TestIdentityContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := IdentityFrom(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, models.Identity{UserID: "u1"})
	ident, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", ident.UserID)
}
