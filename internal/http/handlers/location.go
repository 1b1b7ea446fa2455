package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type LocationHandler struct {
	*CrudHandler[types.Location, types.LocationCreate, types.LocationUpdate]
	*BatchHandler[types.LocationCreate]
}

func NewLocationHandler(log *logger.Logger, svc services.LocationService) *LocationHandler {
	return &LocationHandler{
		CrudHandler:  newCrudHandler[types.Location, types.LocationCreate, types.LocationUpdate](log, "LocationHandler", svc),
		BatchHandler: newBatchHandler[types.LocationCreate](log, "LocationHandler", svc),
	}
}
