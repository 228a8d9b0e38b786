package api

import (
	"net/http"

	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Verify payments
// @Description Reconcile a bank statement export against outstanding bookings and mark clean matches paid
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyPaymentsRequest true "Statement upload"
// @Success 200 {array} resdto.ReportGroupResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	statement, since, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid statement", err.Error())
		return
	}

	result, err := h.cmds.VerifyPayments(c.Request.Context(), statement, since)
	if err != nil {
		if errs.IsFormatError(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid statement", err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment verification failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReport(result.Report))
}
