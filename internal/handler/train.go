package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/railbook/train-booking/internal/model"
	"github.com/railbook/train-booking/internal/repository"
)

// TrainHandler serves train creation and the availability query.
type TrainHandler struct {
	Trains *repository.TrainRepo
}

func NewTrainHandler(t *repository.TrainRepo) *TrainHandler {
	return &TrainHandler{Trains: t}
}

type createTrainReq struct {
	TrainName                string `json:"train_name"`
	Source                   string `json:"source"`
	Destination              string `json:"destination"`
	SeatCapacity             int    `json:"seat_capacity"`
	ArrivalTimeAtSource      string `json:"arrival_time_at_source"`
	ArrivalTimeAtDestination string `json:"arrival_time_at_destination"`
}

// Create inserts a new train row.  All six fields are required; duplicate
// train names are not prevented.
func (h *TrainHandler) Create(c echo.Context) error {
	var req createTrainReq
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}
	if req.TrainName == "" || req.Source == "" || req.Destination == "" ||
		req.SeatCapacity == 0 || req.ArrivalTimeAtSource == "" || req.ArrivalTimeAtDestination == "" {
		return c.String(http.StatusBadRequest, "All fields are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.Trains.Create(ctx, model.Train{
		TrainName:                req.TrainName,
		Source:                   req.Source,
		Destination:              req.Destination,
		SeatCapacity:             req.SeatCapacity,
		ArrivalTimeAtSource:      req.ArrivalTimeAtSource,
		ArrivalTimeAtDestination: req.ArrivalTimeAtDestination,
	})
	if err != nil {
		return c.String(http.StatusBadRequest, "Error adding train")
	}
	return c.String(http.StatusOK, "Train added successfully")
}

// Availability lists every train on the exact source/destination pair with
// its remaining seat count and arrival time at the source station.
func (h *TrainHandler) Availability(c echo.Context) error {
	source := c.QueryParam("source")
	destination := c.QueryParam("destination")
	if source == "" || destination == "" {
		return c.String(http.StatusBadRequest, "Source and destination are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	trains, err := h.Trains.FindByRoute(ctx, source, destination)
	if err != nil {
		return c.String(http.StatusBadRequest, "Error retrieving trains")
	}
	return c.JSON(http.StatusOK, trains)
}
