// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/railbook/train-booking/internal/model"
)

// BookingCreatedQueue is the queue bookings are published to and consumed
// from.
const BookingCreatedQueue = "booking.created"

// BookingCreatedEvent is published after a booking commits.  It carries
// enough information for downstream consumers to log or notify without
// querying the primary database.
type BookingCreatedEvent struct {
	EventID     string `json:"event_id"`
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	TrainName   string `json:"train_name"`
	NoOfSeats   int    `json:"no_of_seats"`
	SeatNumbers string `json:"seat_numbers"`
	BookedAt    string `json:"booked_at"`
}

// NewBookingCreatedEvent builds the event for a freshly committed booking.
func NewBookingCreatedEvent(b model.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		EventID:     uuid.NewString(),
		BookingID:   b.BookingID,
		UserID:      b.UserID,
		TrainName:   b.TrainName,
		NoOfSeats:   b.NoOfSeats,
		SeatNumbers: b.SeatNumbers,
		BookedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
