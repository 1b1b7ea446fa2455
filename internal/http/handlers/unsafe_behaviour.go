package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type UnsafeBehaviourHandler struct {
	*CrudHandler[types.UnsafeBehaviour, types.UnsafeBehaviourCreate, types.UnsafeBehaviourUpdate]
	*BatchHandler[types.UnsafeBehaviourCreate]
}

func NewUnsafeBehaviourHandler(log *logger.Logger, svc services.UnsafeBehaviourService) *UnsafeBehaviourHandler {
	return &UnsafeBehaviourHandler{
		CrudHandler:  newCrudHandler[types.UnsafeBehaviour, types.UnsafeBehaviourCreate, types.UnsafeBehaviourUpdate](log, "UnsafeBehaviourHandler", svc),
		BatchHandler: newBatchHandler[types.UnsafeBehaviourCreate](log, "UnsafeBehaviourHandler", svc),
	}
}
