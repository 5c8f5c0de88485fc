package api

import (
	"net/http"

	reqdto "github.com/Varma0099/lill-things/internal/handler/dto/request"
	resdto "github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/pkg/cookie"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieConfig: cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Login with the studio admin account. The token is returned and also set as an HttpOnly cookie.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	username, password := req.Credentials()
	result, err := h.authCommands.Login(c.Request.Context(), username, password)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAdminToken(c, h.cookieConfig, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
	})
}

// @Summary Admin logout
// @Description Clear the admin cookie. Bearer tokens simply expire.
// @Tags admin
// @Success 204 "No Content"
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieConfig)
	c.Status(http.StatusNoContent)
}
