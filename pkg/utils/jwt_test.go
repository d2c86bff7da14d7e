package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("42", "analyst")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "analyst", claims.Role)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(claims.IssuedAt.Time))
}

func TestParseJWT_WrongSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateJWT("42", "analyst")
	require.NoError(t, err)

	InitJWT("secret-two")
	_, err = ParseJWT(token)
	require.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	InitJWT("test-secret")

	_, err := ParseJWT("not.a.token")
	require.Error(t, err)
}
