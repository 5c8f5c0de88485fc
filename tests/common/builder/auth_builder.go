//go:build unit || e2e

package builder

import (
	reqdto "github.com/Varma0099/lill-things/internal/handler/dto/request"
)

// AdminPassword matches AdminPasswordHash.
const (
	AdminUsername     = "owner"
	AdminPassword     = "password123"
	AdminPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

type LoginBuilder struct {
	Username string
	Password string
}

func NewLoginBuilder() *LoginBuilder {
	return &LoginBuilder{
		Username: AdminUsername,
		Password: AdminPassword,
	}
}

func (a *LoginBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
