package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type DrivingTipHandler struct {
	*CrudHandler[types.DrivingTip, types.DrivingTipCreate, types.DrivingTipUpdate]
}

func NewDrivingTipHandler(log *logger.Logger, svc services.DrivingTipService) *DrivingTipHandler {
	return &DrivingTipHandler{
		CrudHandler: newCrudHandler[types.DrivingTip, types.DrivingTipCreate, types.DrivingTipUpdate](log, "DrivingTipHandler", svc),
	}
}
