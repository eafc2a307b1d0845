package bookingRepo

import (
	"context"

	"flightly/models"
)

// BookingRepository is the durable booking store. Email is the key.
type BookingRepository interface {
	// FindByEmail returns nil, nil when no booking exists for the email.
	FindByEmail(ctx context.Context, email string) (*models.PersistedBooking, error)
	// Insert stores a new booking.
	Insert(ctx context.Context, booking *models.PersistedBooking) error
	// Update overwrites the mutable fields of the booking held by email.
	Update(ctx context.Context, email string, update models.BookingUpdate) error
}
