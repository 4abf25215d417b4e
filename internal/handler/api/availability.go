package api

import (
	"net/http"

	reqdto "github.com/ngocduc1504/reservierung-dionysos/internal/handler/dto/request"
	resdto "github.com/ngocduc1504/reservierung-dionysos/internal/handler/dto/response"
	"github.com/ngocduc1504/reservierung-dionysos/internal/handler/httperr"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/errs"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get availability
// @Description Run one slot-window evaluation for a date and the client's selection state
// @Tags availability
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to the venue-local today"
// @Param selected query string false "Selected time (HH:MM)"
// @Param base query string false "Current window base time (HH:MM)"
// @Param origin query string false "Origin of the selection change" Enums(initial, window_tap, external_selector)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /api/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := query.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, invalidInputMessage(err), nil)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get opening schedule
// @Description Weekly opening periods, holiday override and holiday list of the venue
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.ScheduleResponse
// @Router /api/schedule [get]
func (h *AvailabilityHandler) Schedule(c *gin.Context) {
	view, err := h.q.Schedule(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

func invalidInputMessage(err error) string {
	switch {
	case errs.Is(err, queries.ErrInvalidDate):
		return "Invalid date format, expected YYYY-MM-DD"
	case errs.Is(err, queries.ErrInvalidTime):
		return "Invalid time format, expected HH:MM"
	case errs.Is(err, queries.ErrInvalidOrigin):
		return "Invalid origin"
	default:
		return "Invalid request"
	}
}
