package booking_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	bookingRepo "flightly/database/repository/booking"
	"flightly/database/repository/booking/mocks"
	"flightly/models"
	"flightly/services/booking"
	"flightly/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var commitTime = time.Date(2026, time.October, 18, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return commitTime }

type recordingPublisher struct {
	events []models.BookingEvent
	err    error
}

func (p *recordingPublisher) PublishBookingCommitted(_ context.Context, e models.BookingEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func newReconciler(repo bookingRepo.BookingRepository, pub *recordingPublisher) *booking.DefaultReconciler {
	r := &booking.DefaultReconciler{
		Repo:    repo,
		Catalog: catalog.NewCatalog(clock, catalog.DefaultWindowDays),
		Now:     clock,
	}
	if pub != nil {
		r.Publisher = pub
	}
	return r
}

func berlinRequest() booking.CommitRequest {
	return booking.CommitRequest{
		Email:       "a@b.com",
		FullName:    "Ada Byron",
		Destination: "berlin",
		Date:        "2026-10-25",
		NumTickets:  2,
		TicketClass: models.Economy,
	}
}

func TestCommit_FirstTimeBooking(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	r := newReconciler(repo, nil)

	out, err := r.Commit(context.Background(), berlinRequest())
	require.NoError(t, err)
	require.NotNil(t, out.Booking)

	b := out.Booking
	assert.False(t, out.Updated)
	assert.Equal(t, 998, b.TotalPrice)
	assert.Equal(t, 99, b.LoyaltyPoints)
	assert.Regexp(t, `^BK-\d{14}$`, b.BookingID)
	assert.Equal(t, "BK-20261018103000", b.BookingID)
	assert.Regexp(t, `^[0-9A-F]{8}$`, b.ConfirmationCode)
	assert.Equal(t, booking.ConfirmationCode(b.BookingID), b.ConfirmationCode)
	assert.Equal(t, "2026-10-18 10:30:00", b.BookingTime)
	assert.Equal(t, "Ada Byron", b.FullName)
	assert.NotNil(t, b.MealPreferences)
	assert.NotNil(t, b.MedicalAssistance)

	stored, err := repo.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, b, stored)
}

func TestCommit_InvalidEmailNeverTouchesStore(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	r := newReconciler(repo, nil)

	for _, email := range []string{"not-an-email", "", "a@b", "a b@c.com"} {
		req := berlinRequest()
		req.Email = email

		out, err := r.Commit(context.Background(), req)
		assert.Nil(t, out)
		assert.True(t, booking.IsValidation(err), email)
		assert.Equal(t, models.BookingResult{Error: "Invalid email address"}, booking.ToResult(out, err))
	}
}

func TestCommit_SecondCommitOverwrites(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	r := newReconciler(repo, nil)

	first, err := r.Commit(context.Background(), berlinRequest())
	require.NoError(t, err)

	req := berlinRequest()
	req.Destination = "Paris"
	req.NumTickets = 1
	req.FullName = "Someone Else"
	second, err := r.Commit(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, second.Updated)
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, "paris", second.Booking.Destination)
	assert.Equal(t, first.Booking.BookingID, second.Booking.BookingID)
	assert.Equal(t, first.Booking.ConfirmationCode, second.Booking.ConfirmationCode)
	assert.Equal(t, "Ada Byron", second.Booking.FullName)
	assert.Equal(t, 899, second.Booking.TotalPrice)
	assert.Equal(t, 89, second.Booking.LoyaltyPoints)

	stored, err := repo.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "paris", stored.Destination)
}

func TestCommit_UpdateClearsAbsentOptionalFields(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	r := newReconciler(repo, nil)

	req := berlinRequest()
	req.MealPreferences = []models.MealOption{models.MealVegan}
	req.SpecialRequests = "aisle near exit"
	_, err := r.Commit(context.Background(), req)
	require.NoError(t, err)

	out, err := r.Commit(context.Background(), berlinRequest())
	require.NoError(t, err)
	assert.Empty(t, out.Booking.MealPreferences)
	assert.Empty(t, out.Booking.SpecialRequests)
}

func TestCommit_UnknownFareIsPriceLookupError(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	r := newReconciler(repo, nil)

	req := berlinRequest()
	req.Destination = "madrid"
	_, err := r.Commit(context.Background(), req)

	assert.True(t, booking.IsPriceLookup(err))
	assert.False(t, booking.IsPersistence(err))
}

func TestCommit_TooManyTicketsIsValidationError(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	r := newReconciler(repo, nil)

	for _, n := range []int{models.MaxTicketsPerBooking + 1, math.MaxInt64} {
		req := berlinRequest()
		req.TicketClass = models.First
		req.NumTickets = n
		out, err := r.Commit(context.Background(), req)

		require.Error(t, err)
		assert.True(t, booking.IsValidation(err))
		assert.Nil(t, out)
		assert.Equal(t, "At most 100 tickets per booking", booking.ToResult(out, err).Error)
	}
}

func TestCommit_MaxTicketsIsAccepted(t *testing.T) {
	r := newReconciler(bookingRepo.NewMemoryBookingRepo(), nil)

	req := berlinRequest()
	req.TicketClass = models.First
	req.NumTickets = models.MaxTicketsPerBooking
	out, err := r.Commit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 299900, out.Booking.TotalPrice)
	assert.Equal(t, 29990, out.Booking.LoyaltyPoints)
}

func TestCommit_InvalidDate(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	r := newReconciler(repo, nil)

	req := berlinRequest()
	req.Date = "2026-12-25"
	out, err := r.Commit(context.Background(), req)

	assert.True(t, booking.IsValidation(err))
	assert.Equal(t, "Bookings only available within next 30 days (until 2026-11-17)", booking.ToResult(out, err).Error)
}

func TestCommit_EmptyDateIsAllowed(t *testing.T) {
	r := newReconciler(bookingRepo.NewMemoryBookingRepo(), nil)

	req := berlinRequest()
	req.Date = ""
	out, err := r.Commit(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, out.Booking.Date)
}

func TestCommit_InsertFailureIsPersistenceError(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	repo.On("FindByEmail", mock.Anything, "a@b.com").Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.PersistedBooking")).Return(errors.New("disk full"))
	pub := &recordingPublisher{}
	r := newReconciler(repo, pub)

	out, err := r.Commit(context.Background(), berlinRequest())

	assert.Nil(t, out)
	assert.True(t, booking.IsPersistence(err))
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, "Booking process failed: disk full", booking.ToResult(out, err).Error)
	assert.Empty(t, pub.events)
}

func TestCommit_LookupFailureIsPersistenceError(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	repo.On("FindByEmail", mock.Anything, "a@b.com").Return(nil, errors.New("connection refused"))
	r := newReconciler(repo, nil)

	_, err := r.Commit(context.Background(), berlinRequest())
	assert.True(t, booking.IsPersistence(err))
}

func TestCommit_UpdateWritesFullRecord(t *testing.T) {
	existing := &models.PersistedBooking{
		BookingID:   "BK-20261001090000",
		Email:       "a@b.com",
		FullName:    "Ada Byron",
		Destination: "tokyo",
	}
	repo := mocks.NewBookingRepository(t)
	repo.On("FindByEmail", mock.Anything, "a@b.com").Return(existing, nil)
	repo.On("Update", mock.Anything, "a@b.com", mock.MatchedBy(func(u models.BookingUpdate) bool {
		return u.Destination == "berlin" && u.TotalPrice == 998 && u.LoyaltyPoints == 99 &&
			u.BookingTime == "2026-10-18 10:30:00" && u.MealPreferences != nil
	})).Return(nil)
	r := newReconciler(repo, nil)

	out, err := r.Commit(context.Background(), berlinRequest())
	require.NoError(t, err)
	assert.True(t, out.Updated)
	assert.Equal(t, "BK-20261001090000", out.Booking.BookingID)
	assert.Equal(t, "berlin", out.Booking.Destination)
	assert.Equal(t, "tokyo", existing.Destination)
}

func TestCommit_PublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	r := newReconciler(bookingRepo.NewMemoryBookingRepo(), pub)

	_, err := r.Commit(context.Background(), berlinRequest())
	require.NoError(t, err)
	_, err = r.Commit(context.Background(), berlinRequest())
	require.NoError(t, err)

	require.Len(t, pub.events, 2)
	assert.Equal(t, "booking.committed", pub.events[0].Type)
	assert.False(t, pub.events[0].Updated)
	assert.True(t, pub.events[1].Updated)
	assert.Equal(t, commitTime, pub.events[1].OccurredAt)
}

func TestCommit_PublishFailureDoesNotFailCommit(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	r := newReconciler(bookingRepo.NewMemoryBookingRepo(), pub)

	out, err := r.Commit(context.Background(), berlinRequest())
	require.NoError(t, err)
	assert.NotNil(t, out.Booking)
}

func TestCommitRequestFromDraft_Defaults(t *testing.T) {
	req := booking.CommitRequestFromDraft(models.BookingDraft{Email: "a@b.com", Destination: "tokyo"})

	assert.Equal(t, 1, req.NumTickets)
	assert.Equal(t, models.Economy, req.TicketClass)
	assert.Equal(t, "tokyo", req.Destination)
}

func TestToResult_Success(t *testing.T) {
	b := &models.PersistedBooking{BookingID: "BK-20261018103000"}
	res := booking.ToResult(&booking.CommitOutcome{Booking: b, Updated: true}, nil)

	assert.True(t, res.Success)
	assert.True(t, res.Updated)
	assert.Same(t, b, res.BookingDetails)
	assert.Empty(t, res.Error)
}

func TestPricing(t *testing.T) {
	total, ok := booking.CalculateTotalPrice(499, 2)
	assert.True(t, ok)
	assert.Equal(t, 998, total)

	_, ok = booking.CalculateTotalPrice(8400, 300000)
	assert.False(t, ok)
	_, ok = booking.CalculateTotalPrice(2999, math.MaxInt64)
	assert.False(t, ok)
	_, ok = booking.CalculateTotalPrice(-1, 2)
	assert.False(t, ok)

	assert.Equal(t, 99, booking.CalculateLoyaltyPoints(998))
	assert.Equal(t, 0, booking.CalculateLoyaltyPoints(9))
	assert.Equal(t, 0, booking.CalculateLoyaltyPoints(0))
}
