//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/handler/api"
	resdto "github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/handler/middleware"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/tests/common/builder"
	"github.com/Varma0099/lill-things/tests/common/httptest"
	"github.com/Varma0099/lill-things/tests/common/testutil"
	commandsmock "github.com/Varma0099/lill-things/tests/mock/commands"
	queriesmock "github.com/Varma0099/lill-things/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/bookings", s.handler.Create)
	s.router.GET("/api/bookings/:code", s.handler.GetByCode)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()

	s.Run("success: 200 with the stored booking", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), b.BuildInput()).
			Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Empty(response.Message)
		s.Require().NotNil(response.Booking)
		s.Equal(b.Code, response.Booking.ConfirmationCode)
		s.Equal("2030-06-15", response.Booking.BookingDate)
		s.Equal(string(slot.Slot2PM), response.Booking.TimeSlot)
		s.Equal(b.Participants, response.Booking.CustomerInfo.Participants)
		s.Equal(string(booking.StatusConfirmed), response.Booking.Status)
	})

	s.Run("raw fields are passed through for the command to normalize", func() {
		body := testutil.Payload(s.T(), reqBody, testutil.Set("time", "10:00 am"), testutil.Set("activity", "  pottery making "))
		expected := b.BuildInput()
		expected.TimeSlot = "10:00 am"
		expected.Activity = "  pottery making "
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), expected).Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown activity", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New(`activity "Glass Blowing" not found`), errs.ErrActivityNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertBookingFailure(s.T(), rec, http.StatusNotFound, "Activity not found")
	})

	s.Run("error: 400 Bad Request surfaces validation and capacity messages", func() {
		cases := []struct {
			name string
			err  error
			msg  string
		}{
			{
				name: "participants out of range",
				err:  errs.Mark(booking.ErrInvalidParticipants, errs.ErrValidation),
				msg:  "participants must be between 1 and 8",
			},
			{
				name: "unknown time slot",
				err:  errs.Mark(slot.ErrInvalidTimeSlot, errs.ErrValidation),
				msg:  "time slot must be one of",
			},
			{
				name: "slot full",
				err:  errs.Mark(errors.New("only 1 spot left"), errs.ErrSlotFull),
				msg:  "only 1 spot left",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertBookingFailure(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 400 with a generic message for internal failures", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("pq: connection reset"), errs.ErrInternal)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertBookingFailure(s.T(), rec, http.StatusBadRequest, "Failed to create booking")
		s.NotContains(rec.Body.String(), "connection reset")
	})

	s.Run("error: 400 when participants is not a number", func() {
		body := testutil.Payload(s.T(), reqBody, testutil.Set("customerInfo.participants", "three"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertBookingFailure(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on malformed JSON without calling the command", func() {
		body := testutil.Payload(s.T(), reqBody, testutil.Set("customerInfo", "not-an-object"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertBookingFailure(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestCreate_IdempotencyKey() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()
	key := uuid.MustParse("6f1c2a8e-4b7d-4e0a-9d3c-2f5b8a1e7c40")
	keyed := http.Header{middleware.HeaderIdempotencyKey: []string{key.String()}}

	s.Run("key is passed to the command", func() {
		expected := b.BuildInput()
		expected.IdempotencyKey = key
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), expected).Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, keyed)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec.Header(), map[string]string{middleware.HeaderIdempotentReplayed: ""})
	})

	s.Run("replay returns the stored booking and marks the response", func() {
		replay := b.BuildResult()
		replay.IsReplayed = true
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(replay, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, keyed)

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		httptest.AssertHeaders(s.T(), rec.Header(), map[string]string{middleware.HeaderIdempotentReplayed: "true"})
		s.Require().NotNil(response.Booking)
		s.Equal(b.Code, response.Booking.ConfirmationCode)
	})

	s.Run("error: 400 when the key is not a UUID", func() {
		bad := http.Header{middleware.HeaderIdempotencyKey: []string{"retry-1"}}
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, bad)
		httptest.AssertBookingFailure(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: 400 when the key was used for another booking", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrIdempotencyKeyReused).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, keyed)
		httptest.AssertBookingFailure(s.T(), rec, http.StatusBadRequest, errs.ErrIdempotencyKeyReused.Error())
	})
}

func (s *BookingHandlerTestSuite) TestGetByCode() {
	b := builder.NewBookingBuilder()

	s.Run("success: 200 with booking", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), b.Code).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+b.Code, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.Code, response.ConfirmationCode)
		s.Equal(b.Email, response.CustomerInfo.Email)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "LT2030ZZZZZZ").Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/LT2030ZZZZZZ", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+b.Code, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load booking")
	})
}
