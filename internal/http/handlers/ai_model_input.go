package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type AIModelInputHandler struct {
	*CrudHandler[types.AIModelInput, types.AIModelInputCreate, types.AIModelInputUpdate]
	*BatchHandler[types.AIModelInputCreate]
}

func NewAIModelInputHandler(log *logger.Logger, svc services.AIModelInputService) *AIModelInputHandler {
	return &AIModelInputHandler{
		CrudHandler:  newCrudHandler[types.AIModelInput, types.AIModelInputCreate, types.AIModelInputUpdate](log, "AIModelInputHandler", svc),
		BatchHandler: newBatchHandler[types.AIModelInputCreate](log, "AIModelInputHandler", svc),
	}
}
