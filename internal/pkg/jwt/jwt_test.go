//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps subject and role", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)

		token, err := svc.GenerateToken("owner", jwt.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "owner", claims.Subject)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("owner", jwt.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken("owner", jwt.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
