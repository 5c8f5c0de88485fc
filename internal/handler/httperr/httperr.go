package httperr

import (
	"net/http"

	"github.com/Varma0099/lill-things/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the {"error":{"message"}} body of the admin and lookup routes.
// The public booking endpoint keeps its own {success,message} shape.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// rule maps a domain sentinel to a status. An empty message means the
// error text is safe to show as is.
type rule struct {
	sentinel error
	status   int
	message  string
}

var rules = []rule{
	{errs.ErrValidation, http.StatusBadRequest, ""},
	{errs.ErrIdempotencyKeyReused, http.StatusBadRequest, ""},
	{errs.ErrActivityNotFound, http.StatusNotFound, "Activity not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrSlotNotFound, http.StatusNotFound, "Slot not found"},
	{errs.ErrInvalidStatusTransition, http.StatusConflict, ""},
	{errs.ErrCapacityBelowBookings, http.StatusConflict, ""},
}

// Classify returns the status and client message for err. Unknown errors
// are 500 with fallback, so driver text never reaches the client.
func Classify(err error, fallback string) (int, string) {
	for _, r := range rules {
		if !errs.Is(err, r.sentinel) {
			continue
		}
		if r.message == "" {
			return r.status, err.Error()
		}
		return r.status, r.message
	}
	return http.StatusInternalServerError, fallback
}

// Abort classifies err and writes the error body.
func Abort(c *gin.Context, err error, fallback string) {
	status, msg := Classify(err, fallback)
	AbortWithError(c, status, err, msg, nil)
}

// AbortWithError keeps err on the gin context for the request logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
