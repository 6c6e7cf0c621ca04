package model

// Train mirrors a row in the `train` table.  SeatCapacity is the number of
// seats still bookable, stored as a single mutable counter rather than an
// enumerable seat inventory; the booking flow decrements it in place.
//
// Fields:
//
//	ID                       – primary key identifier.
//	TrainName                – name used for lookups (not enforced unique).
//	Source                   – departure station.
//	Destination              – arrival station.
//	SeatCapacity             – remaining bookable seats.
//	ArrivalTimeAtSource      – arrival time at the source station.
//	ArrivalTimeAtDestination – arrival time at the destination station.
type Train struct {
	ID                       uint64 // train.id
	TrainName                string // train.train_name
	Source                   string // train.source
	Destination              string // train.destination
	SeatCapacity             int    // train.seat_capacity
	ArrivalTimeAtSource      string // train.arrival_time_at_source
	ArrivalTimeAtDestination string // train.arrival_time_at_destination
}
