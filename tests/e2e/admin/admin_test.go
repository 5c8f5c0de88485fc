//go:build e2e

package admin_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/handler/dto/request"
	"github.com/Varma0099/lill-things/internal/handler/dto/response"
	"github.com/Varma0099/lill-things/internal/pkg/cookie"
	"github.com/Varma0099/lill-things/internal/pkg/jwt"
	"github.com/Varma0099/lill-things/tests/common/authtest"
	"github.com/Varma0099/lill-things/tests/common/builder"
	"github.com/Varma0099/lill-things/tests/common/dbtest"
	"github.com/Varma0099/lill-things/tests/common/httptest"
	"github.com/Varma0099/lill-things/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL        = "/api/admin/login"
	logoutURL       = "/api/admin/logout"
	adminBookingURL = "/api/admin/bookings"
	adminSlotURL    = "/api/admin/slots/availability"
	bookingsURL     = "/api/bookings"

	bookingDate = "2030-06-15"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) login(t *testing.T) string {
	t.Helper()
	return authtest.LoginAdmin(t, s.Router, builder.AdminUsername, builder.AdminPassword)
}

func (s *AdminSuite) createBooking(t *testing.T, mutate func(*builder.BookingBuilder)) *response.BookingResponse {
	t.Helper()
	b := builder.NewBookingBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildDTO(), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.CreateBookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.Booking
}

// =============================================================================
// TestLogin
// =============================================================================

func (s *AdminSuite) TestLogin() {
	s.Run("Normal case: cookie token opens admin routes and logout clears it", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, builder.NewLoginBuilder().BuildDTO(), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
		require.Positive(t, res.ExpiresIn)

		cookies := httptest.ExtractCookies(w)
		lw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, adminBookingURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, lw.Code)

		authtest.LogoutAdmin(t, s.Router, cookies)
	})

	s.Run("Normal case: the bearer header works too", func() {
		t := s.T()

		token := s.login(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Abnormal case: wrong credentials", func() {
		t := s.T()

		for _, req := range []request.LoginRequest{
			{Username: builder.AdminUsername, Password: "wrong"},
			{Username: "someone", Password: builder.AdminPassword},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, req, "")
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Nil(t, httptest.ExtractCookie(w, cookie.AdminTokenCookieName))
		}
	})

	s.Run("Abnormal case: admin routes need a valid token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, builder.AdminUsername)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		forged := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, builder.AdminUsername, "customer")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL, nil, forged)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		valid := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, builder.AdminUsername, jwt.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL, nil, valid)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

// =============================================================================
// TestListBookings
// =============================================================================

func (s *AdminSuite) TestListBookings() {
	s.Run("Normal case: filters and pagination", func() {
		t := s.T()
		token := s.login(t)

		s.createBooking(t, nil)
		s.createBooking(t, func(b *builder.BookingBuilder) { b.Time = string(slot.Slot3PM) })
		s.createBooking(t, func(b *builder.BookingBuilder) { b.Activity = activity.ActingStudio })

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			adminBookingURL+"?activity=Pottery+Making&date="+bookingDate, nil, token)
		var filtered response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &filtered)
		require.Len(t, filtered.Bookings, 2)
		for _, b := range filtered.Bookings {
			require.Equal(t, activity.PotteryMaking, b.ActivityName)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL+"?limit=2", nil, token)
		var first response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Len(t, first.Bookings, 2)
		require.NotEmpty(t, first.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL+"?limit=2&cursor="+first.NextCursor, nil, token)
		var second response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Bookings, 1)
		require.Empty(t, second.NextCursor)

		seen := map[string]bool{}
		for _, b := range append(first.Bookings, second.Bookings...) {
			require.False(t, seen[b.ConfirmationCode], "duplicate across pages")
			seen[b.ConfirmationCode] = true
		}
	})

	s.Run("Abnormal case: bad filters", func() {
		t := s.T()
		token := s.login(t)

		for _, q := range []string{"?status=lost", "?date=tomorrow", "?cursor=not-a-cursor"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingURL+q, nil, token)
			require.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})
}

// =============================================================================
// TestUpdateBookingStatus
// =============================================================================

func (s *AdminSuite) TestUpdateBookingStatus() {
	s.Run("Normal case: cancelling frees the spots", func() {
		t := s.T()
		token := s.login(t)

		created := s.createBooking(t, func(b *builder.BookingBuilder) { b.Participants = 3 })
		sub := s.Bus.Subscribe(activity.PotteryMaking)
		defer sub.Close()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminBookingURL+"/"+created.ConfirmationCode+"/status",
			request.UpdateBookingStatusRequest{Status: "cancelled"}, token)
		var updated response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "cancelled", updated.Status)

		select {
		case ev := <-sub.Events():
			require.Equal(t, activity.DefaultMaxCapacity, ev.SpotsLeft)
		case <-time.After(2 * time.Second):
			t.Fatal("no slot update after cancellation")
		}

		var current int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT current_bookings FROM slots WHERE id = $1", created.SlotID).Scan(&current))
		require.Zero(t, current)
	})

	s.Run("Abnormal case: cancelled bookings stay cancelled", func() {
		t := s.T()
		token := s.login(t)

		created := s.createBooking(t, nil)
		url := adminBookingURL + "/" + created.ConfirmationCode + "/status"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, request.UpdateBookingStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, request.UpdateBookingStatusRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Abnormal case: unknown booking and status", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminBookingURL+"/LT2030ZZZZZZ/status",
			request.UpdateBookingStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusNotFound, w.Code)

		created := s.createBooking(t, nil)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, adminBookingURL+"/"+created.ConfirmationCode+"/status",
			request.UpdateBookingStatusRequest{Status: "lost"}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestUpdateSlot
// =============================================================================

func (s *AdminSuite) TestUpdateSlot() {
	s.Run("Normal case: closing a slot hides it from availability", func() {
		t := s.T()
		token := s.login(t)
		closed := false

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminSlotURL, request.UpdateSlotRequest{
			Activity:    activity.PotteryMaking,
			Date:        bookingDate,
			Time:        string(slot.Slot2PM),
			IsAvailable: &closed,
		}, token)
		var res response.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.IsAvailable)
		require.Zero(t, res.SpotsLeft)

		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Participants = 1 }).BuildDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertBookingFailure(t, bw, http.StatusBadRequest, "")
	})

	s.Run("Normal case: raising capacity opens more spots", func() {
		t := s.T()
		token := s.login(t)
		dbtest.CreateTestSlot(t, s.DB, activity.PotteryMaking, bookingDate, string(slot.Slot2PM), 8, 8)
		capacity := 10

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminSlotURL, request.UpdateSlotRequest{
			Activity:    activity.PotteryMaking,
			Date:        bookingDate,
			Time:        string(slot.Slot2PM),
			MaxCapacity: &capacity,
		}, token)
		var res response.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 10, res.MaxCapacity)
		require.Equal(t, 2, res.SpotsLeft)
	})

	s.Run("Abnormal case: capacity below bookings", func() {
		t := s.T()
		token := s.login(t)
		dbtest.CreateTestSlot(t, s.DB, activity.PotteryMaking, bookingDate, string(slot.Slot2PM), 8, 5)
		capacity := 4

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminSlotURL, request.UpdateSlotRequest{
			Activity:    activity.PotteryMaking,
			Date:        bookingDate,
			Time:        string(slot.Slot2PM),
			MaxCapacity: &capacity,
		}, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
