package booking

import "github.com/Varma0099/lill-things/internal/pkg/errs"

var (
	ErrMissingCustomerFields   = errs.New("missing required fields: name, email and phone are required")
	ErrInvalidParticipants     = errs.New("participants must be between 1 and 8")
	ErrInvalidEmail            = errs.New("customer email is not a valid address")
	ErrInvalidConfirmationCode = errs.New("confirmation code is malformed")
	ErrInvalidStatus           = errs.New("unknown booking status")
	ErrInvalidTransition       = errs.New("booking status cannot change that way")
)
