// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: for
// example, ErrInsufficientSeats signals a business-rule violation that
// maps to HTTP 400, while ErrTrainNotFound maps to HTTP 404.
package repository

import "errors"

// ErrUserExists is returned when a registration collides with an
// existing username.  Handlers translate this into an HTTP 400.
var ErrUserExists = errors.New("user already exists")

// ErrTrainNotFound is returned when a booking names a train that does
// not exist.  Handlers translate this into an HTTP 404.
var ErrTrainNotFound = errors.New("train not found")

// ErrInsufficientSeats is returned when a booking requests more seats
// than the train currently has.  Handlers translate this into an HTTP 400.
var ErrInsufficientSeats = errors.New("not enough seats available")
