package api

import (
	"net/http"

	reqdto "github.com/Varma0099/lill-things/internal/handler/dto/request"
	resdto "github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/handler/httperr"
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.AvailabilityQueries
}

func NewSlotHandler(q queries.AvailabilityQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary Slot availability
// @Description All ten time slots of a day for one activity, in schedule order
// @Tags slots
// @Produce json
// @Param activity query string true "Activity name"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slots/availability [get]
func (h *SlotHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	view, err := h.q.Get(c.Request.Context(), query.Activity, query.Date)
	if err != nil {
		httperr.Abort(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
