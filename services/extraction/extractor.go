package extraction

import (
	"flightly/models"
)

// Catalog is the reference data the engine matches against.
type Catalog interface {
	Destinations() []string
	IsValidDate(date string) (bool, string)
	MealOptions() models.MealVocabulary
	SeatPreferences() models.SeatVocabulary
}

// rule applies one matcher to the draft and reports whether it changed it.
type rule struct {
	field string
	apply func(message string, draft *models.BookingDraft) bool
}

// Engine turns free text into draft fields. Every rule runs on every message
// and rules never read each other's output.
type Engine struct {
	rules []rule
}

// Options tunes engine behaviour.
type Options struct {
	// DedupeMeals keeps the meal list distinct instead of appending every mention.
	DedupeMeals bool
}

func NewEngine(catalog Catalog, opts Options) *Engine {
	destinations := catalog.Destinations()
	meals := catalog.MealOptions().All()
	locations := catalog.SeatPreferences().Location
	validDate := func(d string) bool {
		ok, _ := catalog.IsValidDate(d)
		return ok
	}

	return &Engine{rules: []rule{
		{"email", func(msg string, d *models.BookingDraft) bool {
			// First email seen in the conversation wins.
			if d.Email != "" {
				return false
			}
			v, ok := MatchEmail(msg)
			return ok && setString(&d.Email, v)
		}},
		{"phone", func(msg string, d *models.BookingDraft) bool {
			v, ok := MatchPhone(msg)
			return ok && setString(&d.Phone, v)
		}},
		{"passport", func(msg string, d *models.BookingDraft) bool {
			v, ok := MatchPassport(msg)
			return ok && setString(&d.Passport, v)
		}},
		{"date", func(msg string, d *models.BookingDraft) bool {
			v, ok := MatchDate(msg, validDate)
			return ok && setString(&d.Date, v)
		}},
		{"num_tickets", func(msg string, d *models.BookingDraft) bool {
			n, ok := MatchTicketCount(msg)
			if !ok || d.NumTickets == n {
				return false
			}
			d.NumTickets = n
			return true
		}},
		{"destination", func(msg string, d *models.BookingDraft) bool {
			v, ok := MatchDestination(msg, destinations)
			return ok && setString(&d.Destination, v)
		}},
		{"ticket_class", func(msg string, d *models.BookingDraft) bool {
			c, ok := MatchFareClass(msg)
			if !ok || d.TicketClass == c {
				return false
			}
			d.TicketClass = c
			return true
		}},
		{"seat_preferences", func(msg string, d *models.BookingDraft) bool {
			loc, ok := MatchSeatLocation(msg, locations)
			if !ok || d.SeatPreferences.Location == loc {
				return false
			}
			d.SeatPreferences.Location = loc
			return true
		}},
		{"meal_preferences", func(msg string, d *models.BookingDraft) bool {
			changed := false
			for _, meal := range MatchMeals(msg, meals) {
				if opts.DedupeMeals && containsMeal(d.MealPreferences, meal) {
					continue
				}
				d.MealPreferences = append(d.MealPreferences, meal)
				changed = true
			}
			return changed
		}},
	}}
}

// Extract merges what the message says into a copy of draft and returns the
// copy with the names of the fields that changed.
func (e *Engine) Extract(message string, draft models.BookingDraft) (models.BookingDraft, []string) {
	out := draft.Clone()
	var changed []string
	for _, r := range e.rules {
		if r.apply(message, &out) {
			changed = append(changed, r.field)
		}
	}
	return out, changed
}

func setString(dst *string, v string) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func containsMeal(meals []models.MealOption, m models.MealOption) bool {
	for _, existing := range meals {
		if existing == m {
			return true
		}
	}
	return false
}
