//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/handler/dto/response"
	"github.com/ngocduc1504/reservierung-dionysos/tests/common/builder"
	"github.com/ngocduc1504/reservierung-dionysos/tests/common/httptest"
	"github.com/ngocduc1504/reservierung-dionysos/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const checkURL = "/api/reservations/check"

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// =============================================================================
// TestCheckReservation - submit contract
// =============================================================================

func (s *ReservationSuite) TestCheckReservation() {
	s.Run("Normal case: bookable slot is accepted", func() {
		t := s.T()
		reqBody := builder.NewReservationBuilder().BuildCheckRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkURL, reqBody)

		var body response.CheckReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		_, err := uuid.Parse(body.ID)
		require.NoError(t, err)
		require.Equal(t, "2030-01-05", body.Date)
		require.Equal(t, "19:00", body.Time)
	})

	s.Run("Error case: past date is rejected", func() {
		reqBody := builder.NewReservationBuilder().WithDate("2030-01-02").BuildCheckRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkURL, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Date is in the past")
	})

	s.Run("Error case: slot inside the lead time is rejected", func() {
		s.Clock.Set(time.Date(2030, 1, 5, 18, 45, 0, 0, time.UTC))
		reqBody := builder.NewReservationBuilder().WithTime("19:15").BuildCheckRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkURL, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Time is not available")
	})

	s.Run("Error case: inert sunday slot is rejected", func() {
		reqBody := builder.NewReservationBuilder().WithDate("2030-01-06").WithTime("22:00").BuildCheckRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkURL, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Time cannot be selected")
	})

	s.Run("Error case: malformed phone is a bad request", func() {
		reqBody := builder.NewReservationBuilder().WithPhone("+49", "call me").BuildCheckRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkURL, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid contact details")
	})

	s.Run("Error case: guests above VENUE_MAX_GUESTS are rejected by the domain", func() {
		s.Clock.Set(e2e.StartOfSuite)
		reqBody := builder.NewReservationBuilder().WithGuests(25).BuildCheckRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkURL, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid guest count")
	})
}
