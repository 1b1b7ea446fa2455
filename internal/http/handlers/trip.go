package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type TripHandler struct {
	*CrudHandler[types.Trip, types.TripCreate, types.TripUpdate]
	*BatchHandler[types.TripCreate]
}

func NewTripHandler(log *logger.Logger, svc services.TripService) *TripHandler {
	return &TripHandler{
		CrudHandler:  newCrudHandler[types.Trip, types.TripCreate, types.TripUpdate](log, "TripHandler", svc),
		BatchHandler: newBatchHandler[types.TripCreate](log, "TripHandler", svc),
	}
}
