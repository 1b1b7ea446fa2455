package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type RawSensorDataHandler struct {
	*CrudHandler[types.RawSensorData, types.RawSensorDataCreate, types.RawSensorDataUpdate]
}

func NewRawSensorDataHandler(log *logger.Logger, svc services.RawSensorDataService) *RawSensorDataHandler {
	return &RawSensorDataHandler{
		CrudHandler: newCrudHandler[types.RawSensorData, types.RawSensorDataCreate, types.RawSensorDataUpdate](log, "RawSensorDataHandler", svc),
	}
}
