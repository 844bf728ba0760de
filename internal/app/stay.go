package app

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"staybook/internal/domain"
)

const msgDateOrder = "Check-out date must be after check-in date"

// Nights returns the whole-day count between check-in and check-out.
// Dates arrive truncated to midnight, so the division is exact.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

type StayQuote struct {
	Nights int
	Total  float64
}

// QuoteStay computes nights and total for a date range. A check-out
// that is not strictly after check-in is rejected here, server-side,
// on every path that reaches a booking.
func QuoteStay(checkIn, checkOut time.Time, pricePerNight float64) (StayQuote, error) {
	if !checkOut.After(checkIn) {
		return StayQuote{}, &domain.ValidationError{Violations: []string{msgDateOrder}}
	}
	n := Nights(checkIn, checkOut)
	return StayQuote{Nights: n, Total: float64(n) * pricePerNight}, nil
}

// ConfirmationCode derives the display code shown on the confirmation
// page: a pure function of the booking id, never a security token.
func ConfirmationCode(bookingID int64) string {
	sum := md5.Sum([]byte(strconv.FormatInt(bookingID, 10)))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:8])
}
