package model

// Booking records a user's seat purchase on a train.  SeatNumbers is the
// comma-joined textual list handed back to the client, not a structured
// set.
//
// Fields:
//
//	BookingID   – auto-incrementing primary key.
//	UserID      – user who made the booking.
//	TrainName   – train the seats were booked on.
//	NoOfSeats   – number of seats booked.
//	SeatNumbers – e.g. "8, 9, 10".
type Booking struct {
	BookingID   uint64 // bookings.booking_id
	UserID      uint64 // bookings.user_id
	TrainName   string // bookings.train_name
	NoOfSeats   int    // bookings.no_of_seats
	SeatNumbers string // bookings.seat_numbers
}
