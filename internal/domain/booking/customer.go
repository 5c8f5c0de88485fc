package booking

import (
	"net/mail"
	"strings"
)

const (
	MinParticipants = 1
	MaxParticipants = 8
)

// CustomerInfo is who the booking is for and how many people they bring.
type CustomerInfo struct {
	name         string
	email        string
	phone        string
	participants int
}

func NewCustomerInfo(name, email, phone string, participants int) (CustomerInfo, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" || phone == "" {
		return CustomerInfo{}, ErrMissingCustomerFields
	}
	if participants < MinParticipants || participants > MaxParticipants {
		return CustomerInfo{}, ErrInvalidParticipants
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return CustomerInfo{}, ErrInvalidEmail
	}

	return CustomerInfo{
		name:         name,
		email:        email,
		phone:        phone,
		participants: participants,
	}, nil
}

func ReconstructCustomerInfo(name, email, phone string, participants int) CustomerInfo {
	return CustomerInfo{name: name, email: email, phone: phone, participants: participants}
}

func (c CustomerInfo) Name() string      { return c.name }
func (c CustomerInfo) Email() string     { return c.email }
func (c CustomerInfo) Phone() string     { return c.phone }
func (c CustomerInfo) Participants() int { return c.participants }
