package controllers

import (
	"testing"

	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hashed, err := hashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hashed)

	assert.NoError(t, comparePasswords(hashed, "s3cret-passw0rd"))
	assert.Error(t, comparePasswords(hashed, "wrong-password"))
}

func TestGenerateJWTCarriesUserClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Role:     "admin",
	}
	user.ID = 7

	tokenString, err := generateJWT(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}
