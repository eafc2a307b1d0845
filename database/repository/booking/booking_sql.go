package bookingRepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"flightly/models"
)

// Dialect selects placeholder syntax for the SQL store.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

const createBookingsTable = `CREATE TABLE IF NOT EXISTS bookings (
	email VARCHAR(255) PRIMARY KEY,
	booking_id VARCHAR(32) NOT NULL,
	confirmation_code VARCHAR(16) NOT NULL,
	full_name VARCHAR(255) NOT NULL,
	destination VARCHAR(64) NOT NULL,
	travel_date VARCHAR(10) NOT NULL,
	num_tickets INTEGER NOT NULL,
	ticket_class VARCHAR(16) NOT NULL,
	total_price INTEGER NOT NULL,
	loyalty_points INTEGER NOT NULL,
	seat_preferences TEXT NOT NULL,
	meal_preferences TEXT NOT NULL,
	medical_assistance TEXT NOT NULL,
	special_requests TEXT NOT NULL,
	booking_time VARCHAR(19) NOT NULL
)`

const selectBookingByEmail = `SELECT booking_id, confirmation_code, full_name, email, destination, travel_date,
	num_tickets, ticket_class, total_price, loyalty_points, seat_preferences, meal_preferences,
	medical_assistance, special_requests, booking_time
	FROM bookings WHERE email = ?`

const insertBooking = `INSERT INTO bookings (booking_id, confirmation_code, full_name, email, destination,
	travel_date, num_tickets, ticket_class, total_price, loyalty_points, seat_preferences,
	meal_preferences, medical_assistance, special_requests, booking_time)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const updateBooking = `UPDATE bookings SET destination = ?, travel_date = ?, num_tickets = ?, ticket_class = ?,
	total_price = ?, loyalty_points = ?, seat_preferences = ?, meal_preferences = ?,
	medical_assistance = ?, special_requests = ?, booking_time = ?
	WHERE email = ?`

// SQLBookingRepo implements BookingRepository on Postgres or MySQL.
// Preference lists are stored as JSON text.
type SQLBookingRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLBookingRepo(db *sql.DB, dialect Dialect) *SQLBookingRepo {
	return &SQLBookingRepo{db: db, dialect: dialect}
}

// EnsureSchema creates the bookings table when it does not exist.
func (r *SQLBookingRepo) EnsureSchema(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, createBookingsTable); err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders to $n for Postgres.
func (r *SQLBookingRepo) rebind(query string) string {
	if r.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (r *SQLBookingRepo) FindByEmail(ctx context.Context, email string) (*models.PersistedBooking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var (
		b                     models.PersistedBooking
		seats, meals, medical string
	)
	err := r.db.QueryRowContext(ctx, r.rebind(selectBookingByEmail), email).Scan(
		&b.BookingID, &b.ConfirmationCode, &b.FullName, &b.Email, &b.Destination, &b.Date,
		&b.NumTickets, &b.TicketClass, &b.TotalPrice, &b.LoyaltyPoints, &seats, &meals,
		&medical, &b.SpecialRequests, &b.BookingTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking for %s: %w", email, err)
	}
	if err := decodeJSONColumns(&b, seats, meals, medical); err != nil {
		return nil, fmt.Errorf("failed to decode booking for %s: %w", email, err)
	}
	return &b, nil
}

func (r *SQLBookingRepo) Insert(ctx context.Context, b *models.PersistedBooking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	seats, meals, medical, err := encodeJSONColumns(b.SeatPreferences, b.MealPreferences, b.MedicalAssistance)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, r.rebind(insertBooking),
		b.BookingID, b.ConfirmationCode, b.FullName, b.Email, b.Destination, b.Date,
		b.NumTickets, string(b.TicketClass), b.TotalPrice, b.LoyaltyPoints, seats, meals,
		medical, b.SpecialRequests, b.BookingTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking %s: %w", b.BookingID, err)
	}
	return nil
}

// Update does not check affected rows: MySQL reports zero when the values are unchanged.
func (r *SQLBookingRepo) Update(ctx context.Context, email string, u models.BookingUpdate) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	seats, meals, medical, err := encodeJSONColumns(u.SeatPreferences, u.MealPreferences, u.MedicalAssistance)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, r.rebind(updateBooking),
		u.Destination, u.Date, u.NumTickets, string(u.TicketClass), u.TotalPrice, u.LoyaltyPoints,
		seats, meals, medical, u.SpecialRequests, u.BookingTime, email,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking for %s: %w", email, err)
	}
	return nil
}

func encodeJSONColumns(seats models.SeatPreferences, meals []models.MealOption, medical []string) (string, string, string, error) {
	s, err := json.Marshal(seats)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode seat preferences: %w", err)
	}
	if meals == nil {
		meals = []models.MealOption{}
	}
	m, err := json.Marshal(meals)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode meal preferences: %w", err)
	}
	if medical == nil {
		medical = []string{}
	}
	med, err := json.Marshal(medical)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode medical assistance: %w", err)
	}
	return string(s), string(m), string(med), nil
}

func decodeJSONColumns(b *models.PersistedBooking, seats, meals, medical string) error {
	if seats != "" {
		if err := json.Unmarshal([]byte(seats), &b.SeatPreferences); err != nil {
			return err
		}
	}
	if meals != "" {
		if err := json.Unmarshal([]byte(meals), &b.MealPreferences); err != nil {
			return err
		}
	}
	if medical != "" {
		if err := json.Unmarshal([]byte(medical), &b.MedicalAssistance); err != nil {
			return err
		}
	}
	return nil
}
