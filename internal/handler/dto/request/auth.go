package request

import "strings"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) Credentials() (string, string) {
	return strings.TrimSpace(r.Username), r.Password
}
