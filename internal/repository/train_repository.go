package repository

import (
	"context"
	"database/sql"

	"github.com/railbook/train-booking/internal/model"
)

type TrainRepo struct{ DB *sql.DB }

func NewTrainRepo(db *sql.DB) *TrainRepo { return &TrainRepo{DB: db} }

// TrainAvailability is the projection returned by FindByRoute.  The
// available seat count is the train's current stored capacity, already
// reduced by prior bookings.
type TrainAvailability struct {
	TrainName      string `json:"train_name"`
	AvailableSeats int    `json:"available_seats"`
	ArrivalTime    string `json:"arrival_time"`
}

// Create inserts a new train row verbatim.
func (r *TrainRepo) Create(ctx context.Context, t model.Train) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO train
		 (train_name, source, destination, seat_capacity, arrival_time_at_source, arrival_time_at_destination)
		 VALUES (?,?,?,?,?,?)`,
		t.TrainName, t.Source, t.Destination, t.SeatCapacity,
		t.ArrivalTimeAtSource, t.ArrivalTimeAtDestination)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// FindByRoute returns every train matching the exact source/destination
// pair in storage order.
func (r *TrainRepo) FindByRoute(ctx context.Context, source, destination string) ([]TrainAvailability, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT train_name, seat_capacity, arrival_time_at_source
		 FROM train WHERE source=? AND destination=?`,
		source, destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TrainAvailability, 0)
	for rows.Next() {
		var t TrainAvailability
		if err := rows.Scan(&t.TrainName, &t.AvailableSeats, &t.ArrivalTime); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
