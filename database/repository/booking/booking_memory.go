package bookingRepo

import (
	"context"
	"fmt"
	"sync"

	"flightly/models"
)

// MemoryBookingRepo keeps bookings in process. Used for local runs and tests.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.PersistedBooking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.PersistedBooking)}
}

func (r *MemoryBookingRepo) FindByEmail(_ context.Context, email string) (*models.PersistedBooking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[email]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *MemoryBookingRepo) Insert(_ context.Context, booking *models.PersistedBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.Email]; exists {
		return fmt.Errorf("booking for %s already exists", booking.Email)
	}
	r.bookings[booking.Email] = *booking
	return nil
}

func (r *MemoryBookingRepo) Update(_ context.Context, email string, update models.BookingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[email]
	if !ok {
		return fmt.Errorf("booking for %s not found", email)
	}
	b.Apply(update)
	r.bookings[email] = b
	return nil
}

// Len reports how many bookings are stored.
func (r *MemoryBookingRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
