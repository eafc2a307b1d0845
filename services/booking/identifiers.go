package booking

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
	"time"
)

var emailSyntax = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail is a syntax check only.
func ValidateEmail(email string) bool {
	return email != "" && emailSyntax.MatchString(email)
}

// GenerateBookingID is second-granular: BK-YYYYMMDDHHMMSS.
func GenerateBookingID(now time.Time) string {
	return "BK-" + now.Format("20060102150405")
}

// ConfirmationCode is the first 8 hex characters of the MD5 of the booking id, upper-cased.
func ConfirmationCode(bookingID string) string {
	sum := md5.Sum([]byte(bookingID))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:8])
}
