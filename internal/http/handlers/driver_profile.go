package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type DriverProfileHandler struct {
	*CrudHandler[types.DriverProfile, types.DriverProfileCreate, types.DriverProfileUpdate]
}

func NewDriverProfileHandler(log *logger.Logger, svc services.DriverProfileService) *DriverProfileHandler {
	return &DriverProfileHandler{
		CrudHandler: newCrudHandler[types.DriverProfile, types.DriverProfileCreate, types.DriverProfileUpdate](log, "DriverProfileHandler", svc),
	}
}
