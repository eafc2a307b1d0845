package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"flightly/models"
)

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`\b\d{10}\b`)
	passportPattern = regexp.MustCompile(`\b[A-Z0-9]{6,9}\b`)
	datePattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	ticketPattern   = regexp.MustCompile(`\b(\d+)\s+(?:ticket|tickets|seat|seats)\b`)
)

// MatchEmail returns the first email-shaped token.
func MatchEmail(message string) (string, bool) {
	m := emailPattern.FindString(message)
	return m, m != ""
}

// MatchPhone returns the first standalone 10-digit token.
func MatchPhone(message string) (string, bool) {
	m := phonePattern.FindString(message)
	return m, m != ""
}

// MatchPassport returns the first 6-9 character alphanumeric token of the
// upper-cased message. Ordinary words of that length match too.
func MatchPassport(message string) (string, bool) {
	m := passportPattern.FindString(strings.ToUpper(message))
	return m, m != ""
}

// MatchDate returns the first YYYY-MM-DD token accepted by valid.
// Rejected tokens are skipped silently.
func MatchDate(message string, valid func(string) bool) (string, bool) {
	for _, candidate := range datePattern.FindAllString(message, -1) {
		if valid(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// MatchTicketCount reads the first "<n> ticket(s)/seat(s)" with n in
// 1..models.MaxTicketsPerBooking.
func MatchTicketCount(message string) (int, bool) {
	m := ticketPattern.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 || n > models.MaxTicketsPerBooking {
		return 0, false
	}
	return n, true
}

// MatchDestination returns the first destination, in the given order, that
// appears anywhere in the message.
func MatchDestination(message string, destinations []string) (string, bool) {
	lower := strings.ToLower(message)
	for _, dest := range destinations {
		if strings.Contains(lower, strings.ToLower(dest)) {
			return dest, true
		}
	}
	return "", false
}

// MatchFareClass scans for economy, business, first in that order.
func MatchFareClass(message string) (models.FareClass, bool) {
	lower := strings.ToLower(message)
	for _, class := range models.FareClasses {
		if strings.Contains(lower, string(class)) {
			return class, true
		}
	}
	return "", false
}

// MatchSeatLocation scans for the first seat location term in vocabulary order.
func MatchSeatLocation(message string, locations []models.SeatLocation) (models.SeatLocation, bool) {
	lower := strings.ToLower(message)
	for _, loc := range locations {
		if strings.Contains(lower, string(loc)) {
			return loc, true
		}
	}
	return "", false
}

// MatchMeals returns every vocabulary term found, in vocabulary order.
// "non-vegetarian" also yields "vegetarian".
func MatchMeals(message string, options []models.MealOption) []models.MealOption {
	lower := strings.ToLower(message)
	var found []models.MealOption
	for _, meal := range options {
		if strings.Contains(lower, string(meal)) {
			found = append(found, meal)
		}
	}
	return found
}
