package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"recruiting-dashboard-backend/config"
	"recruiting-dashboard-backend/models"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 86400
	config.Conf = conf
}

func TestGetToken(t *testing.T) {
	setTestConfig(t)

	tokenString, err := GetToken("user-1", "Jane Doe", models.UserRoleHR)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "user-1", claims["sub"])
	require.Equal(t, "Jane Doe", claims["name"])
	require.Equal(t, "hr", claims["role"])
	require.NotZero(t, claims["exp"])
}

func TestGetRefreshToken(t *testing.T) {
	setTestConfig(t)

	tokenString, err := GetRefreshToken("user-1", "Jane Doe")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "user-1", claims["sub"])
	_, hasRole := claims["role"]
	require.False(t, hasRole)
}

func TestGetMD5Hash(t *testing.T) {
	require.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", GetMD5Hash("password"))
	require.Equal(t, GetMD5Hash("same"), GetMD5Hash("same"))
	require.NotEqual(t, GetMD5Hash("one"), GetMD5Hash("two"))
}
