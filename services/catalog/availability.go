package catalog

import (
	"strings"
	"time"

	"flightly/models"
)

// dayKeyLayout drops the year. Windows are capped at MaxWindowDays so keys
// never collide; Seats also checks the full date against the window.
const dayKeyLayout = "01-02"

// Availability is the seat table: destination -> month-day -> class -> seats left.
// Nothing decrements it; bookings do not consume seats.
type Availability struct {
	seats map[string]map[string]map[models.FareClass]int
	// first and end bound the initialised window as UTC calendar days, end exclusive.
	first time.Time
	end   time.Time
}

func newAvailability(destinations []string, start time.Time, days int) *Availability {
	seats := make(map[string]map[string]map[models.FareClass]int, len(destinations))
	for _, dest := range destinations {
		byDay := make(map[string]map[models.FareClass]int, days)
		for i := 0; i < days; i++ {
			key := start.AddDate(0, 0, i).Format(dayKeyLayout)
			byClass := make(map[models.FareClass]int, len(classCapacity))
			for class, capacity := range classCapacity {
				byClass[class] = capacity
			}
			byDay[key] = byClass
		}
		seats[dest] = byDay
	}
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return &Availability{seats: seats, first: first, end: first.AddDate(0, 0, days)}
}

// Seats returns 0 for anything unknown or malformed.
func (a *Availability) Seats(destination, date string, class models.FareClass) int {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return 0
	}
	if d.Before(a.first) || !d.Before(a.end) {
		return 0
	}
	fc, ok := models.ParseFareClass(string(class))
	if !ok {
		return 0
	}
	byDay, ok := a.seats[destination]
	if !ok {
		return 0
	}
	byClass, ok := byDay[d.Format(dayKeyLayout)]
	if !ok {
		return 0
	}
	return byClass[fc]
}
