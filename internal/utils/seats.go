package utils

import (
	"strconv"
	"strings"
)

// SeatNumbers renders the comma-joined seat list for a booking.  Seats are
// numbered from the top of the pre-booking capacity downwards: with
// `remaining` seats left after the booking and `count` seats booked, the
// booked seats are remaining+1 .. remaining+count.
func SeatNumbers(remaining, count int) string {
	parts := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		parts = append(parts, strconv.Itoa(remaining+i))
	}
	return strings.Join(parts, ", ")
}
