package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type CauseHandler struct {
	*CrudHandler[types.Cause, types.CauseCreate, types.CauseUpdate]
}

func NewCauseHandler(log *logger.Logger, svc services.CauseService) *CauseHandler {
	return &CauseHandler{
		CrudHandler: newCrudHandler[types.Cause, types.CauseCreate, types.CauseUpdate](log, "CauseHandler", svc),
	}
}
