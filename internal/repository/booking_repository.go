package repository

import (
	"context"
	"database/sql"

	"github.com/railbook/train-booking/internal/model"
	"github.com/railbook/train-booking/internal/utils"
)

// BookingRepo creates booking rows and adjusts train capacity.  The whole
// book operation runs in a single transaction so a failure between the
// capacity update and the booking insert never leaves the two tables
// disagreeing.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Book reserves seats on the named train for userID.  The capacity
// decrement is guarded by `seat_capacity >= ?`, which is what makes two
// concurrent bookings that together exceed capacity impossible: whichever
// transaction commits second finds the guard false and is rejected.
//
// Seat numbers are the top seats of the pre-decrement capacity, e.g.
// booking 3 seats off a capacity of 10 yields "8, 9, 10".
//
// Returns ErrTrainNotFound when no train has that name and
// ErrInsufficientSeats when the remaining capacity is too small.
func (r *BookingRepo) Book(ctx context.Context, userID uint64, trainName string, seats int) (model.Booking, error) {
	var b model.Booking
	if seats < 1 {
		return b, ErrInsufficientSeats
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return b, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"UPDATE train SET seat_capacity = seat_capacity - ? WHERE train_name=? AND seat_capacity >= ?",
		seats, trainName, seats)
	if err != nil {
		return b, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return b, err
	}
	if affected == 0 {
		// Distinguish an unknown train from one that is simply full.
		var one int
		err := tx.QueryRowContext(ctx,
			"SELECT 1 FROM train WHERE train_name=? LIMIT 1", trainName).Scan(&one)
		if err == sql.ErrNoRows {
			return b, ErrTrainNotFound
		}
		if err != nil {
			return b, err
		}
		return b, ErrInsufficientSeats
	}

	var remaining int
	if err := tx.QueryRowContext(ctx,
		"SELECT seat_capacity FROM train WHERE train_name=? LIMIT 1",
		trainName).Scan(&remaining); err != nil {
		return b, err
	}

	seatNumbers := utils.SeatNumbers(remaining, seats)
	ins, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (user_id, train_name, no_of_seats, seat_numbers) VALUES (?,?,?,?)",
		userID, trainName, seats, seatNumbers)
	if err != nil {
		return b, err
	}
	id, err := ins.LastInsertId()
	if err != nil {
		return b, err
	}
	if err := tx.Commit(); err != nil {
		return b, err
	}
	committed = true

	b = model.Booking{
		BookingID:   uint64(id),
		UserID:      userID,
		TrainName:   trainName,
		NoOfSeats:   seats,
		SeatNumbers: seatNumbers,
	}
	return b, nil
}
