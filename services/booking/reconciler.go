package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "flightly/database/repository/booking"
	"flightly/models"
	"flightly/services/notification"
	"flightly/utils"

	"go.uber.org/zap"
)

// Catalog is what the reconciler needs from the flight catalog.
type Catalog interface {
	GetPrice(destination string, class models.FareClass) (int, bool)
	IsValidDate(date string) (bool, string)
}

// CommitRequest carries the values written by a commit. Optional fields left
// empty are stored as empty values.
type CommitRequest struct {
	Email             string
	FullName          string
	Destination       string
	Date              string
	NumTickets        int
	TicketClass       models.FareClass
	SeatPreferences   models.SeatPreferences
	MealPreferences   []models.MealOption
	MedicalAssistance []string
	SpecialRequests   string
}

// CommitRequestFromDraft fills a request from the running draft, defaulting
// the ticket count to 1 and the class to economy.
func CommitRequestFromDraft(d models.BookingDraft) CommitRequest {
	d = d.Clone()
	req := CommitRequest{
		Email:             d.Email,
		FullName:          d.FullName,
		Destination:       d.Destination,
		Date:              d.Date,
		NumTickets:        d.NumTickets,
		TicketClass:       d.TicketClass,
		SeatPreferences:   d.SeatPreferences,
		MealPreferences:   d.MealPreferences,
		MedicalAssistance: d.MedicalAssistance,
		SpecialRequests:   d.SpecialRequests,
	}
	if req.NumTickets <= 0 {
		req.NumTickets = 1
	}
	if req.TicketClass == "" {
		req.TicketClass = models.Economy
	}
	return req
}

// CommitOutcome is a successful commit. Booking is the stored view.
type CommitOutcome struct {
	Booking *models.PersistedBooking
	Updated bool
}

// Reconciler turns a draft into a durable booking keyed by email.
type Reconciler interface {
	// Commit upserts the booking for req.Email. A second commit for the same
	// email overwrites every mutable field; the last writer wins.
	Commit(ctx context.Context, req CommitRequest) (*CommitOutcome, error)
}

// DefaultReconciler implements Reconciler.
type DefaultReconciler struct {
	Repo      bookingRepo.BookingRepository
	Catalog   Catalog
	Publisher notification.BookingPublisher
	Now       func() time.Time
	Logger    *zap.Logger
}

func (r *DefaultReconciler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *DefaultReconciler) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return utils.GetLogger()
}

func (r *DefaultReconciler) Commit(ctx context.Context, req CommitRequest) (*CommitOutcome, error) {
	logger := r.logger().With(zap.String("email", req.Email), zap.String("destination", req.Destination))

	if !ValidateEmail(req.Email) {
		logger.Info("Commit rejected: invalid email")
		return nil, NewValidationError("email", "Invalid email address")
	}
	if req.Date != "" {
		if ok, reason := r.Catalog.IsValidDate(req.Date); !ok {
			logger.Info("Commit rejected: invalid date", zap.String("date", req.Date), zap.String("reason", reason))
			return nil, NewValidationError("date", reason)
		}
	}
	if req.NumTickets <= 0 {
		req.NumTickets = 1
	}
	if req.NumTickets > models.MaxTicketsPerBooking {
		logger.Info("Commit rejected: too many tickets", zap.Int("num_tickets", req.NumTickets))
		return nil, NewValidationError("num_tickets",
			fmt.Sprintf("At most %d tickets per booking", models.MaxTicketsPerBooking))
	}
	if req.TicketClass == "" {
		req.TicketClass = models.Economy
	}
	destination := strings.ToLower(strings.TrimSpace(req.Destination))

	unitPrice, ok := r.Catalog.GetPrice(destination, req.TicketClass)
	if !ok {
		logger.Info("Commit rejected: no fare", zap.String("class", string(req.TicketClass)))
		return nil, NewPriceLookupError(destination, string(req.TicketClass))
	}
	total, ok := CalculateTotalPrice(unitPrice, req.NumTickets)
	if !ok {
		logger.Info("Commit rejected: total price out of range", zap.Int("num_tickets", req.NumTickets))
		return nil, NewValidationError("num_tickets", "Total price is out of range")
	}
	now := r.now()

	existing, err := r.Repo.FindByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Booking lookup failed", zap.Error(err))
		return nil, NewPersistenceError(err)
	}

	var outcome *CommitOutcome
	if existing != nil {
		update := models.BookingUpdate{
			Destination:       destination,
			Date:              req.Date,
			NumTickets:        req.NumTickets,
			TicketClass:       req.TicketClass,
			TotalPrice:        total,
			LoyaltyPoints:     CalculateLoyaltyPoints(total),
			SeatPreferences:   req.SeatPreferences,
			MealPreferences:   nonNilMeals(req.MealPreferences),
			MedicalAssistance: nonNilStrings(req.MedicalAssistance),
			SpecialRequests:   req.SpecialRequests,
			BookingTime:       now.Format(models.BookingTimeLayout),
		}
		if err := r.Repo.Update(ctx, req.Email, update); err != nil {
			logger.Error("Booking update failed", zap.Error(err))
			return nil, NewPersistenceError(err)
		}
		merged := *existing
		merged.Apply(update)
		outcome = &CommitOutcome{Booking: &merged, Updated: true}
		logger.Info("Booking updated", zap.String("booking_id", merged.BookingID))
	} else {
		id := GenerateBookingID(now)
		record := &models.PersistedBooking{
			BookingID:         id,
			ConfirmationCode:  ConfirmationCode(id),
			FullName:          req.FullName,
			Email:             req.Email,
			Destination:       destination,
			Date:              req.Date,
			NumTickets:        req.NumTickets,
			TicketClass:       req.TicketClass,
			TotalPrice:        total,
			LoyaltyPoints:     CalculateLoyaltyPoints(total),
			SeatPreferences:   req.SeatPreferences,
			MealPreferences:   nonNilMeals(req.MealPreferences),
			MedicalAssistance: nonNilStrings(req.MedicalAssistance),
			SpecialRequests:   req.SpecialRequests,
			BookingTime:       now.Format(models.BookingTimeLayout),
		}
		if err := r.Repo.Insert(ctx, record); err != nil {
			logger.Error("Booking insert failed", zap.Error(err))
			return nil, NewPersistenceError(err)
		}
		outcome = &CommitOutcome{Booking: record}
		logger.Info("Booking created", zap.String("booking_id", id), zap.Int("total_price", total))
	}

	r.publish(ctx, logger, outcome, now)
	return outcome, nil
}

// publish is best effort; the booking is already stored.
func (r *DefaultReconciler) publish(ctx context.Context, logger *zap.Logger, outcome *CommitOutcome, at time.Time) {
	if r.Publisher == nil {
		return
	}
	event := models.BookingEvent{
		Type:       notification.EventBookingCommitted,
		Updated:    outcome.Updated,
		Booking:    *outcome.Booking,
		OccurredAt: at,
	}
	if err := r.Publisher.PublishBookingCommitted(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event", zap.Error(err))
	}
}

// ToResult converts a commit into the structured value handed to callers.
func ToResult(outcome *CommitOutcome, err error) models.BookingResult {
	if err != nil {
		var be *BookingError
		if errors.As(err, &be) {
			return models.BookingResult{Error: be.Message}
		}
		return models.BookingResult{Error: err.Error()}
	}
	return models.BookingResult{Success: true, Updated: outcome.Updated, BookingDetails: outcome.Booking}
}

func nonNilMeals(m []models.MealOption) []models.MealOption {
	if m == nil {
		return []models.MealOption{}
	}
	return m
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
