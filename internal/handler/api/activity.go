package api

import (
	"net/http"

	resdto "github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/handler/httperr"
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	q queries.ActivityQueries
}

func NewActivityHandler(q queries.ActivityQueries) *ActivityHandler {
	return &ActivityHandler{q: q}
}

// @Summary List activities
// @Description Active activities, ordered by name
// @Tags activities
// @Produce json
// @Success 200 {object} resdto.ActivityListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load activities", nil)
		return
	}
	res, err := resdto.FromActivityViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load activities", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
