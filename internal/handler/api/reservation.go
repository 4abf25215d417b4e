package api

import (
	"net/http"

	reqdto "github.com/ngocduc1504/reservierung-dionysos/internal/handler/dto/request"
	resdto "github.com/ngocduc1504/reservierung-dionysos/internal/handler/dto/response"
	"github.com/ngocduc1504/reservierung-dionysos/internal/handler/httperr"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/errs"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Check reservation
// @Description Validate a booking request against the slots offered right now. Nothing is stored.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CheckReservationRequest true "Reservation request"
// @Success 200 {object} resdto.CheckReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/reservations/check [post]
func (h *ReservationHandler) Check(c *gin.Context) {
	var req reqdto.CheckReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, invalidInputMessage(err), nil)
		return
	}

	result, err := h.cmds.Check(c.Request.Context(), cmd)
	if err != nil {
		status, msg := checkErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckReservationResult(result))
}

func checkErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, commands.ErrDateInPast):
		return http.StatusUnprocessableEntity, "Date is in the past"
	case errs.Is(err, commands.ErrSlotInert):
		return http.StatusUnprocessableEntity, "Time cannot be selected"
	case errs.Is(err, commands.ErrSlotUnavailable):
		return http.StatusUnprocessableEntity, "Time is not available"
	case errs.Is(err, commands.ErrInvalidGuestCount):
		return http.StatusBadRequest, "Invalid guest count"
	case errs.Is(err, commands.ErrInvalidContact):
		return http.StatusBadRequest, "Invalid contact details"
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrNotBookable):
		return http.StatusUnprocessableEntity, "Not bookable"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
