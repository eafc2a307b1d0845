package models

// Fare describes one cabin on a route.
type Fare struct {
	Price             int      `json:"price"`              // whole currency units per ticket
	Currency          string   `json:"currency"`           // ISO 4217 code
	Duration          string   `json:"duration"`           // e.g. "8h 15m"
	Airline           string   `json:"airline"`            // operating carrier
	Baggage           string   `json:"baggage"`            // allowance summary
	FlightType        string   `json:"flight_type"`        // "non-stop", "one-stop"
	Stops             int      `json:"stops"`              // number of intermediate stops
	DepartureAirports []string `json:"departure_airports"` // airports served on the outbound leg
	ArrivalAirports   []string `json:"arrival_airports"`   // airports served on arrival
}

// SeatLayout is the cabin geometry for one class.
type SeatLayout struct {
	Rows   string `json:"rows"`   // e.g. "20-50"
	Layout string `json:"layout"` // e.g. "3-3-3"
}

// CatalogEntry is the static reference data for one destination.
type CatalogEntry struct {
	Destination       string                   `json:"destination"` // lower-case city key
	SourceCity        string                   `json:"source_city"`
	Fares             map[FareClass]Fare       `json:"fares"`
	MealService       bool                     `json:"meal_service"`
	SpecialAssistance []string                 `json:"special_assistance,omitempty"`
	SeatConfig        map[FareClass]SeatLayout `json:"seat_config,omitempty"`
}

// Fare returns the fare for a class, if the destination sells it.
func (e CatalogEntry) Fare(class FareClass) (Fare, bool) {
	f, ok := e.Fares[class]
	return f, ok
}
