package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/event"
	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Messages shown to people booking through the public site.
const (
	MessageConfirmed         = "Die Buchung war erfolgreich. Du bekommst in den nächsten Minuten eine Bestätigung per E-Mail."
	MessageWaitingList       = "Du stehst jetzt auf der Warteliste. Wir benachrichtigen Dich, wenn Plätze frei werden."
	MessageFailure           = "Leider ist etwas schief gelaufen. Bitte versuche es später noch einmal."
	MessagePreBookingClosed  = "Der Buchungslink ist nicht mehr gültig da die Frühbuchungsphase zu Ende ist."
	MessagePreBookingUsed    = "Der Buchungslink wurde schon benutzt und ist daher ungültig."
	MessagePreBookingInvalid = "Der Buchungslink ist ungültig."
	MessageDuplicate         = "Für diese Kontaktdaten liegt bereits eine Buchung für die Veranstaltung vor."
	MessageInvalidRequest    = "Bitte überprüfe Deine Angaben."
)

type BookingHandler struct {
	cmds   commands.BookingCommands
	events queries.EventQueries
}

func NewBookingHandler(cmds commands.BookingCommands, events queries.EventQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, events: events}
}

// @Summary Book event
// @Description Book a seat or a waiting list spot for an event
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookEventRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} resdto.BookingResponse
// @Failure 500 {object} resdto.BookingResponse
// @Router /api/events/booking [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req reqdto.BookEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err, MessageInvalidRequest)
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		h.fail(c, http.StatusBadRequest, err, MessageInvalidRequest)
		return
	}

	outcome, err := h.cmds.Book(c.Request.Context(), domainReq)
	if err != nil {
		h.failFromError(c, err)
		return
	}
	h.respond(c, outcome)
}

// @Summary Pre-book event
// @Description Book through a single-click early booking link
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.PreBookEventRequest true "Pre-booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} resdto.BookingResponse
// @Failure 500 {object} resdto.BookingResponse
// @Router /api/events/prebooking [post]
func (h *BookingHandler) PreBook(c *gin.Context) {
	var req reqdto.PreBookEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err, MessagePreBookingInvalid)
		return
	}

	outcome, err := h.cmds.PreBook(c.Request.Context(), req.Token)
	if err != nil {
		h.failFromError(c, err)
		return
	}
	h.respond(c, outcome)
}

// @Summary Cancel booking
// @Description Cancel a booking; the oldest waiting list entry takes over a freed seat
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrapf(errs.ErrDomainValidation, "booking id %q", c.Param("id")), "Invalid id", nil)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), int32(id))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, errs.ErrBookingAlreadyCanceled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already canceled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cancel failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Issue pre-booking link
// @Description Create the token of a single-click early booking link for a subscriber
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssuePreBookingLinkRequest true "Link request"
// @Success 201 {object} resdto.PreBookingLinkResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/prebooking-links [post]
func (h *BookingHandler) IssuePreBookingLink(c *gin.Context) {
	var req reqdto.IssuePreBookingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	token, err := h.cmds.IssuePreBookingToken(c.Request.Context(), event.ID(req.EventID), req.SubscriberID)
	if err != nil {
		if errs.Is(err, errs.ErrSubscriberNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscriber not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue link", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.PreBookingLinkResponse{Token: token})
}

func (h *BookingHandler) respond(c *gin.Context, outcome booking.Outcome) {
	if booking.Accepted(outcome) {
		message := MessageConfirmed
		if outcome.Kind() == booking.KindWaitingListed {
			message = MessageWaitingList
		}
		c.JSON(http.StatusOK, resdto.BookingSuccess(message, h.counters(c.Request.Context(), booking.EventOf(outcome))))
		return
	}

	switch o := outcome.(type) {
	case booking.NotBookable:
		if o.Reason == booking.ReasonPreBookingClosed {
			c.JSON(http.StatusOK, resdto.BookingFailure(MessagePreBookingClosed))
			return
		}
		c.JSON(http.StatusOK, resdto.BookingFailure(MessageFailure))
	case booking.DuplicateBooking:
		if o.PreBooking {
			c.JSON(http.StatusOK, resdto.BookingFailure(MessagePreBookingUsed))
			return
		}
		c.JSON(http.StatusOK, resdto.BookingFailure(MessageDuplicate))
	default:
		c.JSON(http.StatusOK, resdto.BookingFailure(MessageFailure))
	}
}

// counters lists the events sharing the booked event's status. The booking
// is already committed, so a failure here only empties the list.
func (h *BookingHandler) counters(ctx context.Context, e *event.Event) []event.Counter {
	if e == nil {
		return nil
	}
	cs, err := h.events.CountersByStatus(ctx, e.Status.String())
	if err != nil {
		slog.Error("failed to load event counters", "event_id", e.ID, "error", err.Error())
		return nil
	}
	return cs
}

func (h *BookingHandler) failFromError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidPreBookingToken):
		h.fail(c, http.StatusBadRequest, err, MessagePreBookingInvalid)
	case errs.Is(err, errs.ErrEventNotFound):
		h.fail(c, http.StatusNotFound, err, MessageFailure)
	default:
		h.fail(c, http.StatusInternalServerError, err, MessageFailure)
	}
}

func (h *BookingHandler) fail(c *gin.Context, status int, err error, message string) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resdto.BookingFailure(message))
}
