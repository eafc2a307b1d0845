package models

// BookingDraft is the structured booking built up over a conversation.
// Fields are only ever set or overwritten, never cleared.
type BookingDraft struct {
	FullName          string          `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Email             string          `json:"email,omitempty" bson:"email,omitempty"`
	Phone             string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Passport          string          `json:"passport,omitempty" bson:"passport,omitempty"`
	Destination       string          `json:"destination,omitempty" bson:"destination,omitempty"`
	Date              string          `json:"date,omitempty" bson:"date,omitempty"` // YYYY-MM-DD
	NumTickets        int             `json:"num_tickets,omitempty" bson:"num_tickets,omitempty"`
	TicketClass       FareClass       `json:"ticket_class,omitempty" bson:"ticket_class,omitempty"`
	SeatPreferences   SeatPreferences `json:"seat_preferences,omitzero" bson:"seat_preferences,omitempty"`
	MealPreferences   []MealOption    `json:"meal_preferences,omitempty" bson:"meal_preferences,omitempty"`
	MedicalAssistance []string        `json:"medical_assistance,omitempty" bson:"medical_assistance,omitempty"`
	SpecialRequests   string          `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
}

// DraftDetails are form fields a front end may attach to a chat message.
type DraftDetails struct {
	FullName          string   `json:"full_name,omitempty"`
	MedicalAssistance []string `json:"medical_assistance,omitempty"`
	SpecialRequests   string   `json:"special_requests,omitempty"`
}

// MaxTicketsPerBooking caps one booking at a full economy cabin.
const MaxTicketsPerBooking = 100

// RequiredDraftFields must all be present before a booking is ready to confirm.
var RequiredDraftFields = []string{
	"full_name", "phone", "passport", "email", "destination", "date", "num_tickets", "ticket_class",
}

// Clone returns a deep copy so callers can merge without aliasing slices.
func (d BookingDraft) Clone() BookingDraft {
	out := d
	out.SeatPreferences = d.SeatPreferences.clone()
	if d.MealPreferences != nil {
		out.MealPreferences = append([]MealOption(nil), d.MealPreferences...)
	}
	if d.MedicalAssistance != nil {
		out.MedicalAssistance = append([]string(nil), d.MedicalAssistance...)
	}
	return out
}

// Merge overlays the non-empty details onto a copy of the draft.
func (d BookingDraft) Merge(details DraftDetails) BookingDraft {
	out := d.Clone()
	if details.FullName != "" {
		out.FullName = details.FullName
	}
	if len(details.MedicalAssistance) > 0 {
		out.MedicalAssistance = append([]string(nil), details.MedicalAssistance...)
	}
	if details.SpecialRequests != "" {
		out.SpecialRequests = details.SpecialRequests
	}
	return out
}

func (d BookingDraft) IsEmpty() bool {
	return len(d.PresentFields()) == 0
}

// PresentFields lists the draft fields that currently hold a value.
func (d BookingDraft) PresentFields() []string {
	var present []string
	add := func(name string, ok bool) {
		if ok {
			present = append(present, name)
		}
	}
	add("full_name", d.FullName != "")
	add("email", d.Email != "")
	add("phone", d.Phone != "")
	add("passport", d.Passport != "")
	add("destination", d.Destination != "")
	add("date", d.Date != "")
	add("num_tickets", d.NumTickets > 0)
	add("ticket_class", d.TicketClass != "")
	add("seat_preferences", !d.SeatPreferences.IsZero())
	add("meal_preferences", len(d.MealPreferences) > 0)
	add("medical_assistance", len(d.MedicalAssistance) > 0)
	add("special_requests", d.SpecialRequests != "")
	return present
}

// MissingRequiredFields lists required fields still absent, in RequiredDraftFields order.
func (d BookingDraft) MissingRequiredFields() []string {
	present := make(map[string]bool)
	for _, f := range d.PresentFields() {
		present[f] = true
	}
	var missing []string
	for _, f := range RequiredDraftFields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}
