package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Varma0099/lill-things/internal/pkg/cookie"
	"github.com/Varma0099/lill-things/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminSubjectKey = "admin_subject"
	ctxAdminRoleKey    = "admin_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the admin token from the cookie or an Authorization
// Bearer header, in that order.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminSubjectKey, subject)
		c.Set(ctxAdminRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"subject": subject,
			"role":    role,
		})
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAdminToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetAdminSubject returns the username of the authenticated admin.
func GetAdminSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}
