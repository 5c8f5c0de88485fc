//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/handler/api"
	resdto "github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/pkg/cookie"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/tests/common/builder"
	"github.com/Varma0099/lill-things/tests/common/httptest"
	"github.com/Varma0099/lill-things/tests/common/testutil"
	commandsmock "github.com/Varma0099/lill-things/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, config.NewTestConfig())

	s.router.POST("/api/admin/login", s.handler.Login)
	s.router.POST("/api/admin/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     testutil.Edit
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"
	reqBody := builder.NewLoginBuilder().BuildDTO()

	s.Run("success: returns token and sets admin cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(&commands.LoginResult{AccessToken: "signed-token", ExpiresIn: time.Hour}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.AccessToken)
		s.Equal(int64(3600), response.ExpiresIn)

		adminCookie := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(adminCookie)
		s.Equal("signed-token", adminCookie.Value)
		s.True(adminCookie.HttpOnly)
		s.Equal("/api/admin", adminCookie.Path)
	})

	s.Run("success: username is trimmed", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "owner", reqBody.Password).
			Return(&commands.LoginResult{AccessToken: "t", ExpiresIn: time.Minute}, nil).Times(1)

		body := testutil.Payload(s.T(), reqBody, testutil.Set("username", "  owner "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []testCaseAuth{
			{name: "missing username", mutate: testutil.Drop("username"), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Drop("password"), expectCode: http.StatusBadRequest},
			{name: "empty username", mutate: testutil.Set("username", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Set("password", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.Payload(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 401 Unauthorized on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Nil(httptest.ExtractCookie(rec, cookie.AdminTokenCookieName))
	})

	s.Run("error: 500 on token failure", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("sign failed"), commands.ErrTokenGeneration)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	cleared := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
	s.True(cleared.MaxAge < 0)
}
