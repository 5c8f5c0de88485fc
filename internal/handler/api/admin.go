package api

import (
	"net/http"

	reqdto "github.com/Varma0099/lill-things/internal/handler/dto/request"
	resdto "github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/handler/httperr"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.BookingQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.BookingQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description Newest first, keyset paginated. Follow nextCursor for the next page.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param activity query string false "Activity name"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param time query string false "Time slot label"
// @Param status query string false "Booking status"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, next, err := h.q.List(c.Request.Context(), filter, query.ToCursor(), query.Limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views, next))
}

// @Summary Update booking status
// @Description Cancelling a confirmed booking gives its spots back to the slot.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Confirmation code"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{code}/status [patch]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := h.cmds.UpdateBookingStatus(c.Request.Context(), c.Param("code"), req.Status)
	if err != nil {
		httperr.Abort(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Update slot settings
// @Description Open or close a slot and optionally change its capacity. Capacity can never drop below current bookings.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSlotRequest true "Slot settings"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/slots/availability [patch]
func (h *AdminHandler) UpdateSlot(c *gin.Context) {
	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	s, err := h.cmds.UpdateSlotSettings(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Failed to update slot")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlot(s))
}
