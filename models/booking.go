package models

import "time"

// BookingTimeLayout is how booking_time is rendered in every store.
const BookingTimeLayout = "2006-01-02 15:04:05"

// PersistedBooking is the durable record. Email is the key: one active booking per email.
type PersistedBooking struct {
	BookingID         string          `bson:"booking_id" json:"booking_id"`               // BK-<YYYYMMDDHHMMSS>
	ConfirmationCode  string          `bson:"confirmation_code" json:"confirmation_code"` // 8 upper-case hex chars
	FullName          string          `bson:"full_name" json:"full_name"`
	Email             string          `bson:"email" json:"email"`
	Destination       string          `bson:"destination" json:"destination"`
	Date              string          `bson:"date" json:"date"`
	NumTickets        int             `bson:"num_tickets" json:"num_tickets"`
	TicketClass       FareClass       `bson:"ticket_class" json:"ticket_class"`
	TotalPrice        int             `bson:"total_price" json:"total_price"`
	LoyaltyPoints     int             `bson:"loyalty_points" json:"loyalty_points"`
	SeatPreferences   SeatPreferences `bson:"seat_preferences" json:"seat_preferences"`
	MealPreferences   []MealOption    `bson:"meal_preferences" json:"meal_preferences"`
	MedicalAssistance []string        `bson:"medical_assistance" json:"medical_assistance"`
	SpecialRequests   string          `bson:"special_requests" json:"special_requests"`
	BookingTime       string          `bson:"booking_time" json:"booking_time"` // BookingTimeLayout
}

// BookingUpdate is the full set of mutable fields written when an email books again.
// Every field is written, empty values included.
type BookingUpdate struct {
	Destination       string          `bson:"destination" json:"destination"`
	Date              string          `bson:"date" json:"date"`
	NumTickets        int             `bson:"num_tickets" json:"num_tickets"`
	TicketClass       FareClass       `bson:"ticket_class" json:"ticket_class"`
	TotalPrice        int             `bson:"total_price" json:"total_price"`
	LoyaltyPoints     int             `bson:"loyalty_points" json:"loyalty_points"`
	SeatPreferences   SeatPreferences `bson:"seat_preferences" json:"seat_preferences"`
	MealPreferences   []MealOption    `bson:"meal_preferences" json:"meal_preferences"`
	MedicalAssistance []string        `bson:"medical_assistance" json:"medical_assistance"`
	SpecialRequests   string          `bson:"special_requests" json:"special_requests"`
	BookingTime       string          `bson:"booking_time" json:"booking_time"`
}

// Apply overlays an update onto the record, mirroring what the store writes.
func (b *PersistedBooking) Apply(u BookingUpdate) {
	b.Destination = u.Destination
	b.Date = u.Date
	b.NumTickets = u.NumTickets
	b.TicketClass = u.TicketClass
	b.TotalPrice = u.TotalPrice
	b.LoyaltyPoints = u.LoyaltyPoints
	b.SeatPreferences = u.SeatPreferences
	b.MealPreferences = u.MealPreferences
	b.MedicalAssistance = u.MedicalAssistance
	b.SpecialRequests = u.SpecialRequests
	b.BookingTime = u.BookingTime
}

// BookingResult is the structured value handed across the core boundary.
type BookingResult struct {
	Success        bool              `json:"success,omitempty"`
	Updated        bool              `json:"updated,omitempty"`
	BookingDetails *PersistedBooking `json:"booking_details,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// BookingEvent is published after every successful commit.
type BookingEvent struct {
	Type       string           `json:"type"` // "booking.committed"
	Updated    bool             `json:"updated"`
	Booking    PersistedBooking `json:"booking"`
	OccurredAt time.Time        `json:"occurred_at"`
}
