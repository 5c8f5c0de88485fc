package cookie

import (
	"net/http"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminTokenCookieName = "lt_admin_token"

func SetAdminToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		AdminTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/api/admin",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAdminToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AdminTokenCookieName, "", -1, "/api/admin", cfg.Domain, cfg.Secure, true)
}

func GetAdminToken(c *gin.Context) string {
	token, _ := c.Cookie(AdminTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
