package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"flightly/models"
)

// PromptCatalog is the reference data quoted in the system instruction.
type PromptCatalog interface {
	Destinations() []string
	Entry(destination string) (models.CatalogEntry, bool)
	FareClasses() []models.FareClass
	MealOptions() models.MealVocabulary
	SeatPreferences() models.SeatVocabulary
	WindowDays() int
}

// SystemMessage renders the fixed instruction block sent first on every turn.
func SystemMessage(c PromptCatalog) string {
	var fares strings.Builder
	for _, dest := range c.Destinations() {
		entry, ok := c.Entry(dest)
		if !ok {
			continue
		}
		prices := make([]string, 0, len(c.FareClasses()))
		var currency string
		for _, class := range c.FareClasses() {
			if fare, ok := entry.Fare(class); ok {
				prices = append(prices, fmt.Sprintf("%s %d", class, fare.Price))
				currency = fare.Currency
			}
		}
		fmt.Fprintf(&fares, "  - %s (from %s, %s): %s\n", dest, entry.SourceCity, currency, strings.Join(prices, ", "))
	}

	meals := make([]string, 0)
	for _, m := range c.MealOptions().All() {
		meals = append(meals, string(m))
	}
	classes := make([]string, 0, len(c.FareClasses()))
	for _, class := range c.FareClasses() {
		classes = append(classes, string(class))
	}

	return fmt.Sprintf(`### Role
You are the booking assistant for FlightAI. Help travellers book flights, check seat availability, and understand fares and loyalty points.

### Flight Data
- Destinations: %s
- Classes: %s
- Fares per ticket:
%s- Meal Options: %s
- Seat Preferences: %s

### Process
1. Work out what the traveller wants (book, check availability, ask about a price) and ask for whatever is missing.
2. A booking needs: full name (letters and spaces), phone number (exactly 10 digits), passport number (6-9 upper-case letters or digits), email address, destination, travel date, number of tickets and class.
3. Quote prices from the fare table. Loyalty points are 10%% of the total price.
4. Read the booking back before confirming it and give the booking id and confirmation code once it is stored.

### Rules
- Dates use YYYY-MM-DD, cannot be in the past and must fall within the next %d days.
- Check availability before confirming a booking.
- Confirm special requests and medical needs explicitly.
- Keep answers short and professional and state validation problems plainly.
`,
		strings.Join(c.Destinations(), ", "),
		strings.Join(classes, ", "),
		fares.String(),
		strings.Join(meals, ", "),
		strings.Join(c.SeatPreferences().Terms(), ", "),
		c.WindowDays(),
	)
}

// ContextSnapshot renders the running draft and the conversation state.
func ContextSnapshot(draft models.BookingDraft, state models.ConversationState) string {
	b, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		b = []byte("{}")
	}
	return fmt.Sprintf("Current booking details: %s\nConversation state: %s", b, state)
}

// BuildPrompt orders the blocks for one turn: system instruction, context
// snapshot, every prior user/assistant pair, then the new message.
func BuildPrompt(system string, draft models.BookingDraft, state models.ConversationState, history []models.ChatTurn, message string) []string {
	parts := make([]string, 0, 3+2*len(history))
	parts = append(parts, system, ContextSnapshot(draft, state))
	for _, turn := range history {
		parts = append(parts, turn.User, turn.Assistant)
	}
	return append(parts, message)
}

// DeriveState tags the draft for the prompt. A booked session stays booked.
func DeriveState(draft models.BookingDraft, previous models.ConversationState) models.ConversationState {
	switch {
	case previous == models.StateBooked:
		return models.StateBooked
	case draft.IsEmpty():
		return models.StateInitial
	case len(draft.MissingRequiredFields()) == 0:
		return models.StateReady
	default:
		return models.StateCollecting
	}
}
