package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	token, err = BearerToken("bearer  abc ")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = BearerToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = BearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestParsePrincipal_JWT(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-7"},
		Role:             "doctor",
		ClinicID:         "clinic-1",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	p, err := ParsePrincipal(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-7", p.UserID)
	assert.Equal(t, "doctor", p.Role)
	assert.Equal(t, "clinic-1", p.ClinicID)
	assert.Equal(t, signed, p.Token)
}

func TestParsePrincipal_OpaqueAndBroken(t *testing.T) {
	p, err := ParsePrincipal("opaque-dev-token")
	require.NoError(t, err)
	assert.Equal(t, "opaque-dev-token", p.Token)
	assert.Empty(t, p.UserID)

	_, err = ParsePrincipal("a.b.c")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestContext(t *testing.T) {
	assert.Empty(t, TokenFromContext(context.Background()))

	ctx := WithPrincipal(context.Background(), Principal{Token: "t", UserID: "u"})
	p, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u", p.UserID)
	assert.Equal(t, "t", TokenFromContext(ctx))
}
