package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/railbook/train-booking/internal/queue"
	"github.com/railbook/train-booking/internal/repository"
	"github.com/railbook/train-booking/internal/service"
)

// BookingHandler serves the authenticated booking endpoint.  JWT
// verification happens in middleware before this handler runs.  Publisher
// may be nil, in which case no events are emitted.
type BookingHandler struct {
	Bookings  *repository.BookingRepo
	Publisher *service.QueuePublisher
}

func NewBookingHandler(b *repository.BookingRepo, p *service.QueuePublisher) *BookingHandler {
	return &BookingHandler{Bookings: b, Publisher: p}
}

type bookReq struct {
	ID        uint64 `json:"id"`
	NoOfSeats int    `json:"no_of_seats"`
}

// Book reserves seats on the train named in the path.  The repository runs
// the availability check, capacity decrement and booking insert as one
// transaction, so two concurrent bookings can never oversell the train.
func (h *BookingHandler) Book(c echo.Context) error {
	trainName := c.Param("train_name")

	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}
	if req.NoOfSeats < 1 {
		return c.String(http.StatusBadRequest, "Not enough seats available")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Bookings.Book(ctx, req.ID, trainName, req.NoOfSeats)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTrainNotFound):
			return c.String(http.StatusNotFound, "Train not found")
		case errors.Is(err, repository.ErrInsufficientSeats):
			return c.String(http.StatusBadRequest, "Not enough seats available")
		default:
			return c.String(http.StatusInternalServerError, "Error booking seat")
		}
	}

	// Fire and forget: a failed publish must not fail the booking.
	if h.Publisher != nil {
		event := queue.NewBookingCreatedEvent(booking)
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			_ = h.Publisher.PublishBookingCreated(pubCtx, event)
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Seat booked successfully",
		"booking_id":   booking.BookingID,
		"seat_numbers": booking.SeatNumbers,
	})
}
