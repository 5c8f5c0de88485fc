package api

import (
	"net/http"

	reqdto "github.com/Varma0099/lill-things/internal/handler/dto/request"
	resdto "github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/handler/httperr"
	"github.com/Varma0099/lill-things/internal/handler/middleware"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.ReservationCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.ReservationCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve spots in an activity time slot. Unknown activities are 404, every other failure is 400.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID; a retry with the same key and body replays the first booking"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 200 {object} resdto.CreateBookingResponse
// @Header 200 {string} Idempotent-Replayed "true when the booking was stored by an earlier request"
// @Failure 400 {object} resdto.CreateBookingResponse
// @Failure 404 {object} resdto.CreateBookingResponse
// @Failure 429 {object} resdto.CreateBookingResponse
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.CreateBookingResponse{Message: "Invalid request format"})
		return
	}

	in := req.ToInput()
	if raw := c.GetHeader(middleware.HeaderIdempotencyKey); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, resdto.CreateBookingResponse{Message: "Idempotency-Key must be a UUID"})
			return
		}
		in.IdempotencyKey = key
	}

	res, err := h.cmds.CreateReservation(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		switch {
		case errs.Is(err, errs.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, resdto.CreateBookingResponse{Message: "Activity not found"})
		case errs.Is(err, errs.ErrValidation), errs.Is(err, errs.ErrSlotFull), errs.Is(err, errs.ErrIdempotencyKeyReused):
			c.JSON(http.StatusBadRequest, resdto.CreateBookingResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, resdto.CreateBookingResponse{Message: "Failed to create booking"})
		}
		return
	}

	if res.IsReplayed {
		c.Header(middleware.HeaderIdempotentReplayed, "true")
	}
	c.JSON(http.StatusOK, resdto.CreateBookingResponse{
		Success: true,
		Booking: resdto.FromBooking(res.Booking),
	})
}

// @Summary Get booking
// @Description Look up a booking by its confirmation code
// @Tags bookings
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{code} [get]
func (h *BookingHandler) GetByCode(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
