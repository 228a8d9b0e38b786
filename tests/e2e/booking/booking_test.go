//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"club-booking/internal/domain/auth"
	"club-booking/internal/handler/api"
	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/pkg/shortlink"
	"club-booking/internal/usecase/commands"
	"club-booking/tests/common/authtest"
	"club-booking/tests/common/builder"
	"club-booking/tests/common/dbtest"
	"club-booking/tests/common/httptest"
	"club-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	bookingURL    = "/api/events/booking"
	preBookingURL = "/api/events/prebooking"
	countersURL   = "/api/events/counters"
	cancelURL     = "/api/admin/bookings/%d/cancel"
	linksURL      = "/api/admin/prebooking-links"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) book(eventID int32, email string) resdto.BookingResponse {
	reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.EventID = eventID
		b.Email = email
	}).BuildRequestDTO()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingURL, reqBody, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	return httptest.DecodeJSON[resdto.BookingResponse](s.T(), w)
}

// =============================================================================
// TestBook
// =============================================================================

func (s *BookingSuite) TestBook() {
	s.Run("seats, then waiting list, then booked out", func() {
		t := s.T()
		e := dbtest.DefaultEvent()
		e.MaxSubscribers, e.MaxWaitingList = 1, 1
		eventID := dbtest.CreateTestEvent(t, s.DB, e)

		first := s.book(eventID, "a@example.org")
		require.True(t, first.Success)
		require.Equal(t, api.MessageConfirmed, first.Message)
		require.Len(t, first.Counters, 1)
		require.Equal(t, int32(1), first.Counters[0].Subscribers)

		second := s.book(eventID, "b@example.org")
		require.True(t, second.Success)
		require.Equal(t, api.MessageWaitingList, second.Message)

		third := s.book(eventID, "c@example.org")
		require.False(t, third.Success)
		require.Empty(t, third.Counters)

		subscribers, waiting := dbtest.EventCounters(t, s.DB, eventID)
		require.Equal(t, int32(1), subscribers)
		require.Equal(t, int32(1), waiting)
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, commands.JobBookingConfirmed))
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, commands.JobBookingWaitingList))
	})

	s.Run("same contact twice is a duplicate", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, dbtest.DefaultEvent())

		require.True(t, s.book(eventID, "a@example.org").Success)
		again := s.book(eventID, "a@example.org")

		require.False(t, again.Success)
		require.Equal(t, api.MessageDuplicate, again.Message)
		subscribers, _ := dbtest.EventCounters(t, s.DB, eventID)
		require.Equal(t, int32(1), subscribers)
	})

	s.Run("draft event is not bookable", func() {
		t := s.T()
		e := dbtest.DefaultEvent()
		e.Status = "Draft"
		eventID := dbtest.CreateTestEvent(t, s.DB, e)

		resp := s.book(eventID, "a@example.org")

		require.False(t, resp.Success)
		require.Equal(t, api.MessageFailure, resp.Message)
	})

	s.Run("unknown event", func() {
		reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.EventID = 4242 }).BuildRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingURL, reqBody, "")

		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestConcurrentBooking - counters never exceed capacity under contention
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("parallel requests fill exactly the available slots", func() {
		t := s.T()
		e := dbtest.DefaultEvent()
		e.MaxSubscribers, e.MaxWaitingList = 5, 3
		eventID := dbtest.CreateTestEvent(t, s.DB, e)

		const attempts = 20
		var (
			mu       sync.Mutex
			accepted int
			rejected []string
		)
		var g errgroup.Group
		for i := 0; i < attempts; i++ {
			i := i
			g.Go(func() error {
				reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.EventID = eventID
					b.Email = fmt.Sprintf("racer%d@example.org", i)
				}).BuildRequestDTO()
				raw, err := json.Marshal(reqBody)
				if err != nil {
					return fmt.Errorf("attempt %d: %w", i, err)
				}
				req, err := http.NewRequest(http.MethodPost, bookingURL, bytes.NewReader(raw))
				if err != nil {
					return fmt.Errorf("attempt %d: %w", i, err)
				}
				req.Header.Set("Content-Type", "application/json")

				w := httptest.PerformHTTPRequest(s.Router, req)
				if w.Code != http.StatusOK {
					return fmt.Errorf("attempt %d: status %d: %s", i, w.Code, w.Body.String())
				}
				var resp resdto.BookingResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					return fmt.Errorf("attempt %d: %w", i, err)
				}

				mu.Lock()
				defer mu.Unlock()
				if resp.Success {
					accepted++
				} else {
					rejected = append(rejected, resp.Message)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, 8, accepted)
		require.Len(t, rejected, attempts-8)
		for _, msg := range rejected {
			require.Equal(t, api.MessageFailure, msg)
		}
		subscribers, waiting := dbtest.EventCounters(t, s.DB, eventID)
		require.Equal(t, int32(5), subscribers)
		require.Equal(t, int32(3), waiting)
		enrolled, waitingRows := dbtest.ActiveBookings(t, s.DB, eventID)
		require.Equal(t, subscribers, enrolled)
		require.Equal(t, waiting, waitingRows)
	})
}

// =============================================================================
// TestCancel - freed seats go to the oldest waiting booking
// =============================================================================

func (s *BookingSuite) TestCancel() {
	organizer := func() string {
		return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), auth.RoleOrganizer)
	}

	s.Run("promotes the first waiting booking", func() {
		t := s.T()
		e := dbtest.DefaultEvent()
		e.MaxSubscribers, e.MaxWaitingList = 1, 2
		e.Subscribers, e.WaitingList = 1, 2
		eventID := dbtest.CreateTestEvent(t, s.DB, e)
		seat := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			EventID: eventID, SubscriberID: dbtest.CreateTestSubscriber(t, s.DB, "A", "A", "a@example.org", false),
			Enrolled: true, PaymentID: "22-1000",
		})
		firstWaiting := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			EventID: eventID, SubscriberID: dbtest.CreateTestSubscriber(t, s.DB, "B", "B", "b@example.org", false),
			PaymentID: "22-1001",
		})
		secondWaiting := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			EventID: eventID, SubscriberID: dbtest.CreateTestSubscriber(t, s.DB, "C", "C", "c@example.org", false),
			PaymentID: "22-1002",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, seat), nil, organizer())

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.NotNil(t, body.PromotedBookingID)
		require.Equal(t, firstWaiting, *body.PromotedBookingID)
		require.Equal(t, int32(1), body.Counter.Subscribers)
		require.Equal(t, int32(1), body.Counter.WaitingList)

		require.True(t, dbtest.LoadBookingState(t, s.DB, seat).Canceled)
		require.True(t, dbtest.LoadBookingState(t, s.DB, firstWaiting).Enrolled)
		require.False(t, dbtest.LoadBookingState(t, s.DB, secondWaiting).Enrolled)
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, commands.JobBookingPromoted))
	})

	s.Run("second cancel conflicts", func() {
		t := s.T()
		e := dbtest.DefaultEvent()
		e.Subscribers = 1
		eventID := dbtest.CreateTestEvent(t, s.DB, e)
		bookingID := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			EventID: eventID, SubscriberID: dbtest.CreateTestSubscriber(t, s.DB, "A", "A", "a@example.org", false),
			Enrolled: true, PaymentID: "22-1000",
		})
		token := organizer()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, bookingID), nil, token)
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, bookingID), nil, token)

		require.Equal(t, http.StatusOK, first.Code)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "Booking already canceled")
		subscribers, _ := dbtest.EventCounters(t, s.DB, eventID)
		require.Equal(t, int32(0), subscribers)
	})

	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(cancelURL, 1), nil, "")

		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("expired token", func() {
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), auth.RoleAdmin)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(cancelURL, 1), nil, token)

		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestPreBooking - issue a link and redeem it
// =============================================================================

func (s *BookingSuite) TestPreBooking() {
	s.Run("issued link books once during review", func() {
		t := s.T()
		e := dbtest.DefaultEvent()
		e.Status = "Review"
		eventID := dbtest.CreateTestEvent(t, s.DB, e)
		subscriberID := dbtest.CreateTestSubscriber(t, s.DB, "Erika", "Mustermann", "erika@example.org", true)
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, auth.RoleOrganizer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, linksURL,
			reqdto.IssuePreBookingLinkRequest{EventID: eventID, SubscriberID: subscriberID}, token)
		var link resdto.PreBookingLinkResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &link)
		require.NotEmpty(t, link.Token)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, preBookingURL, reqdto.PreBookEventRequest{Token: link.Token}, "")
		first := httptest.DecodeJSON[resdto.BookingResponse](t, w)
		require.True(t, first.Success, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, preBookingURL, reqdto.PreBookEventRequest{Token: link.Token}, "")
		second := httptest.DecodeJSON[resdto.BookingResponse](t, w)
		require.False(t, second.Success)
		require.Equal(t, api.MessagePreBookingUsed, second.Message)
	})

	s.Run("link for a published event is closed", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, dbtest.DefaultEvent())
		subscriberID := dbtest.CreateTestSubscriber(t, s.DB, "Erika", "Mustermann", "erika@example.org", true)
		codec, err := shortlink.NewCodec(s.Config.Booking.LinkSalt, s.Config.Booking.LinkMinLength, s.Config.Booking.LinkAlphabet)
		require.NoError(t, err)
		token, err := codec.Encode(int64(eventID), int64(subscriberID))
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, preBookingURL, reqdto.PreBookEventRequest{Token: token}, "")

		resp := httptest.DecodeJSON[resdto.BookingResponse](t, w)
		require.False(t, resp.Success)
		require.Equal(t, api.MessagePreBookingClosed, resp.Message)
	})

	s.Run("forged link", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, preBookingURL, reqdto.PreBookEventRequest{Token: "0000000000"}, "")

		require.Equal(s.T(), http.StatusBadRequest, w.Code)
		resp := httptest.DecodeJSON[resdto.BookingResponse](s.T(), w)
		require.Equal(s.T(), api.MessagePreBookingInvalid, resp.Message)
	})
}

// =============================================================================
// TestCounters
// =============================================================================

func (s *BookingSuite) TestCounters() {
	s.Run("lists events of the requested status", func() {
		t := s.T()
		dbtest.CreateTestEvent(t, s.DB, dbtest.DefaultEvent())
		running := dbtest.DefaultEvent()
		running.Status = "Running"
		runningID := dbtest.CreateTestEvent(t, s.DB, running)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, countersURL+"?status=Running", nil, "")

		var body []resdto.EventCounterResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body, 1)
		require.Equal(t, runningID, body[0].ID)
	})
}
