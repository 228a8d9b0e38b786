package api

import (
	"net/http"

	"club-booking/internal/domain/event"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	q queries.EventQueries
}

func NewEventHandler(q queries.EventQueries) *EventHandler {
	return &EventHandler{q: q}
}

// @Summary Event counters
// @Description List seat and waiting list counters of the events in a lifecycle status
// @Tags events
// @Produce json
// @Param status query string false "Lifecycle status" default(Published)
// @Success 200 {array} resdto.EventCounterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/events/counters [get]
func (h *EventHandler) Counters(c *gin.Context) {
	status := c.DefaultQuery("status", event.StatusPublished.String())

	counters, err := h.q.CountersByStatus(c.Request.Context(), status)
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load counters", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCounters(counters))
}
