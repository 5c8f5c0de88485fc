package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/pkg/jwt"
	"github.com/Varma0099/lill-things/internal/pkg/password"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

// AdminAccount is the single staff login, configured out of band.
type AdminAccount struct {
	Username     string
	PasswordHash string
}

type authCommandsImpl struct {
	account    AdminAccount
	jwtService *jwt.Service
}

func NewAuthCommands(account AdminAccount, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		account:    account,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	if a.account.PasswordHash == "" {
		slog.WarnContext(ctx, "admin login attempted but no admin password is configured")
		return nil, errs.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.account.Username)) == 1
	// Always run bcrypt so response time does not reveal whether the username matched.
	passErr := password.ComparePassword(a.account.PasswordHash, plainPassword)
	if !userOK || passErr != nil {
		slog.InfoContext(ctx, "admin login rejected", "username", username)
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.account.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "admin logged in", "username", username)
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
