package extraction

import (
	"testing"
	"time"

	"flightly/models"
	"flightly/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(opts Options) *Engine {
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	cat := catalog.NewCatalog(func() time.Time { return now }, catalog.DefaultWindowDays)
	return NewEngine(cat, opts)
}

const fullMessage = "I need 2 tickets to Berlin in business class on 2026-10-25, window seat please. " +
	"Email me at jane.doe@example.com or call 5551234567."

func TestExtract_FullMessage(t *testing.T) {
	e := newTestEngine(Options{})

	draft, changed := e.Extract(fullMessage, models.BookingDraft{})

	assert.Equal(t, "jane.doe@example.com", draft.Email)
	assert.Equal(t, "5551234567", draft.Phone)
	assert.Equal(t, "2026-10-25", draft.Date)
	assert.Equal(t, 2, draft.NumTickets)
	assert.Equal(t, "berlin", draft.Destination)
	assert.Equal(t, models.Business, draft.TicketClass)
	assert.Equal(t, models.SeatWindow, draft.SeatPreferences.Location)
	assert.Empty(t, draft.MealPreferences)
	assert.Contains(t, changed, "email")
	assert.Contains(t, changed, "destination")
	assert.NotContains(t, changed, "meal_preferences")
}

func TestExtract_SameMessageTwiceIsStable(t *testing.T) {
	e := newTestEngine(Options{})

	first, _ := e.Extract(fullMessage, models.BookingDraft{})
	second, changed := e.Extract(fullMessage, first)

	assert.Equal(t, first, second)
	assert.Empty(t, changed)
}

func TestExtract_MealListGrowsPerMention(t *testing.T) {
	e := newTestEngine(Options{})
	msg := "A vegetarian meal for me please"

	draft, _ := e.Extract(msg, models.BookingDraft{})
	require.Equal(t, []models.MealOption{models.MealVegetarian}, draft.MealPreferences)

	draft, changed := e.Extract(msg, draft)
	assert.Equal(t, []models.MealOption{models.MealVegetarian, models.MealVegetarian}, draft.MealPreferences)
	assert.Equal(t, []string{"meal_preferences"}, changed)

	draft, _ = e.Extract(msg, draft)
	assert.Len(t, draft.MealPreferences, 3)
}

func TestExtract_DedupeMealsOption(t *testing.T) {
	e := newTestEngine(Options{DedupeMeals: true})
	msg := "vegan and gluten-free please"

	draft, _ := e.Extract(msg, models.BookingDraft{})
	draft, changed := e.Extract(msg, draft)

	assert.Equal(t, []models.MealOption{models.MealVegan, models.MealGlutenFree}, draft.MealPreferences)
	assert.Empty(t, changed)
}

func TestExtract_NonVegetarianAlsoMatchesVegetarian(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("non-vegetarian food", models.BookingDraft{})
	assert.Equal(t, []models.MealOption{models.MealVegetarian, models.MealNonVegetarian}, draft.MealPreferences)
}

func TestExtract_NoNegationHandling(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("I don't want halal", models.BookingDraft{})
	assert.Equal(t, []models.MealOption{models.MealHalal}, draft.MealPreferences)
}

func TestExtract_FirstEmailWins(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("reach me at first@example.com", models.BookingDraft{})
	draft, changed := e.Extract("actually use second@example.org", draft)

	assert.Equal(t, "first@example.com", draft.Email)
	assert.NotContains(t, changed, "email")
}

func TestExtract_LaterMatchesOverwrite(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("window seat, 2 tickets to tokyo", models.BookingDraft{})
	draft, _ = e.Extract("make it an aisle, 3 seats, and paris instead", draft)

	assert.Equal(t, models.SeatAisle, draft.SeatPreferences.Location)
	assert.Equal(t, 3, draft.NumTickets)
	assert.Equal(t, "paris", draft.Destination)
}

func TestExtract_FieldsAreNeverCleared(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract(fullMessage, models.BookingDraft{})
	after, changed := e.Extract("ok", draft)

	assert.Equal(t, draft, after)
	assert.Empty(t, changed)
}

func TestExtract_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine(Options{})
	in := models.BookingDraft{MealPreferences: []models.MealOption{models.MealKosher}}

	out, _ := e.Extract("kosher again", in)

	assert.Len(t, in.MealPreferences, 1)
	assert.Len(t, out.MealPreferences, 2)
}

func TestExtract_InvalidDatesAreSkipped(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("either 2026-10-01 or 2026-10-20", models.BookingDraft{})
	assert.Equal(t, "2026-10-20", draft.Date)

	draft, changed := e.Extract("how about 2027-05-01?", models.BookingDraft{})
	assert.Empty(t, draft.Date)
	assert.NotContains(t, changed, "date")
}

func TestExtract_DestinationTieBreakIsRegistrationOrder(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("Paris first, then London", models.BookingDraft{})
	assert.Equal(t, "london", draft.Destination)
}

func TestExtract_ClassScanOrder(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("first or economy, whichever is cheaper", models.BookingDraft{})
	assert.Equal(t, models.Economy, draft.TicketClass)
}

func TestExtract_PassportFalsePositive(t *testing.T) {
	e := newTestEngine(Options{})

	draft, _ := e.Extract("flying to mumbai", models.BookingDraft{})
	assert.Equal(t, "FLYING", draft.Passport)

	draft, _ = e.Extract("ab123456 is my passport", models.BookingDraft{})
	assert.Equal(t, "AB123456", draft.Passport)
}

func TestMatchers(t *testing.T) {
	t.Run("phone needs exactly ten digits", func(t *testing.T) {
		_, ok := MatchPhone("call 12345678901")
		assert.False(t, ok)
		v, ok := MatchPhone("call 0123456789 now")
		assert.True(t, ok)
		assert.Equal(t, "0123456789", v)
	})

	t.Run("ticket count", func(t *testing.T) {
		n, ok := MatchTicketCount("We want 3 Seats")
		assert.True(t, ok)
		assert.Equal(t, 3, n)

		_, ok = MatchTicketCount("0 tickets")
		assert.False(t, ok)

		n, ok = MatchTicketCount("100 tickets")
		assert.True(t, ok)
		assert.Equal(t, 100, n)

		_, ok = MatchTicketCount("101 tickets")
		assert.False(t, ok)

		_, ok = MatchTicketCount("9223372036854775807 tickets")
		assert.False(t, ok)

		_, ok = MatchTicketCount("99999999999999999999 tickets")
		assert.False(t, ok)

		_, ok = MatchTicketCount("tickets for 4")
		assert.False(t, ok)

		n, ok = MatchTicketCount("1 ticket")
		assert.True(t, ok)
		assert.Equal(t, 1, n)
	})

	t.Run("email", func(t *testing.T) {
		v, ok := MatchEmail("mail: j.smith+travel@mail.co.uk, thanks")
		assert.True(t, ok)
		assert.Equal(t, "j.smith+travel@mail.co.uk", v)

		_, ok = MatchEmail("not-an-email")
		assert.False(t, ok)
	})

	t.Run("seat location order", func(t *testing.T) {
		loc, ok := MatchSeatLocation("aisle or window", []models.SeatLocation{models.SeatWindow, models.SeatAisle})
		assert.True(t, ok)
		assert.Equal(t, models.SeatWindow, loc)
	})

	t.Run("destination", func(t *testing.T) {
		_, ok := MatchDestination("somewhere warm", []string{"london"})
		assert.False(t, ok)
	})
}
