package notification

import (
	"context"

	"flightly/models"
)

const (
	// BookingExchange is the fanout exchange committed bookings are announced on.
	BookingExchange = "booking_committed"
	// EventBookingCommitted is the event type of every committed booking.
	EventBookingCommitted = "booking.committed"
)

// BookingPublisher announces committed bookings to downstream consumers.
type BookingPublisher interface {
	PublishBookingCommitted(ctx context.Context, event models.BookingEvent) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCommitted(context.Context, models.BookingEvent) error { return nil }
func (NoopPublisher) Close() error                                                     { return nil }
