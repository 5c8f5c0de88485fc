//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/Varma0099/lill-things/internal/handler/dto/request"
	"github.com/Varma0099/lill-things/internal/pkg/cookie"
	"github.com/Varma0099/lill-things/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin logs in through the API and returns the token from the admin cookie.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	adminCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, adminCookie, "admin token not found in cookies")
	require.NotEmpty(t, adminCookie.Value, "admin token cookie is empty")

	return adminCookie.Value
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
