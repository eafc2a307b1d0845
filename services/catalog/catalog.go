package catalog

import (
	"fmt"
	"strings"
	"time"

	"flightly/models"
)

const (
	// DateLayout is the only accepted travel date format.
	DateLayout = "2006-01-02"
	// DefaultWindowDays is how far ahead bookings are accepted.
	DefaultWindowDays = 30
	// MaxWindowDays keeps the month-day seat keys unique.
	MaxWindowDays = 365
)

// Catalog is the read-only flight reference data plus the seat table built at start-up.
type Catalog struct {
	entries    []models.CatalogEntry
	index      map[string]int
	windowDays int
	now        func() time.Time
	seats      *Availability
}

// NewCatalog builds the catalog and initialises availability for windowDays from now().
// A nil clock means time.Now; a non-positive window means DefaultWindowDays and
// anything above MaxWindowDays is clamped to it.
func NewCatalog(now func() time.Time, windowDays int) *Catalog {
	if now == nil {
		now = time.Now
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}
	entries := defaultEntries()
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Destination] = i
	}
	c := &Catalog{
		entries:    entries,
		index:      index,
		windowDays: windowDays,
		now:        now,
	}
	c.seats = newAvailability(c.Destinations(), now(), windowDays)
	return c
}

// Default is the catalog the server runs with.
func Default() *Catalog {
	return NewCatalog(time.Now, DefaultWindowDays)
}

func normalize(destination string) string {
	return strings.ToLower(strings.TrimSpace(destination))
}

// Destinations returns destination keys in registration order.
func (c *Catalog) Destinations() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Destination
	}
	return out
}

// Entry looks up a destination case-insensitively.
func (c *Catalog) Entry(destination string) (models.CatalogEntry, bool) {
	i, ok := c.index[normalize(destination)]
	if !ok {
		return models.CatalogEntry{}, false
	}
	return c.entries[i], true
}

// GetPrice returns the per-ticket price, or false when the destination or class is unknown.
func (c *Catalog) GetPrice(destination string, class models.FareClass) (int, bool) {
	entry, ok := c.Entry(destination)
	if !ok {
		return 0, false
	}
	fc, ok := models.ParseFareClass(string(class))
	if !ok {
		return 0, false
	}
	fare, ok := entry.Fare(fc)
	if !ok {
		return 0, false
	}
	return fare.Price, true
}

func (c *Catalog) FareClasses() []models.FareClass {
	return append([]models.FareClass(nil), models.FareClasses...)
}

func (c *Catalog) MealOptions() models.MealVocabulary {
	return mealVocabulary
}

func (c *Catalog) SeatPreferences() models.SeatVocabulary {
	return seatVocabulary
}

func (c *Catalog) WindowDays() int {
	return c.windowDays
}

// IsValidDate reports whether date can be booked right now, with a reason either way.
// The date is read as local midnight, so today itself is already in the past.
func (c *Catalog) IsValidDate(date string) (bool, string) {
	now := c.now()
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), now.Location())
	if err != nil {
		return false, "Invalid date format. Use YYYY-MM-DD"
	}
	if d.Before(now) {
		return false, "Cannot book for past dates"
	}
	maxDate := now.AddDate(0, 0, c.windowDays)
	if d.After(maxDate) {
		return false, fmt.Sprintf("Bookings only available within next %d days (until %s)",
			c.windowDays, maxDate.Format(DateLayout))
	}
	return true, "Date is valid"
}

// CheckAvailability returns seats left; 0 means not bookable, never an error.
func (c *Catalog) CheckAvailability(destination, date string, class models.FareClass) int {
	return c.seats.Seats(normalize(destination), date, class)
}

// AvailableDates lists the ISO dates in the window that still have economy seats.
func (c *Catalog) AvailableDates(destination string) []string {
	now := c.now()
	var dates []string
	for i := 0; i < c.windowDays; i++ {
		date := now.AddDate(0, 0, i).Format(DateLayout)
		if c.CheckAvailability(destination, date, models.Economy) > 0 {
			dates = append(dates, date)
		}
	}
	return dates
}
