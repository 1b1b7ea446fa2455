package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type EmbeddingHandler struct {
	*CrudHandler[types.Embedding, types.EmbeddingCreate, types.EmbeddingUpdate]
}

func NewEmbeddingHandler(log *logger.Logger, svc services.EmbeddingService) *EmbeddingHandler {
	return &EmbeddingHandler{
		CrudHandler: newCrudHandler[types.Embedding, types.EmbeddingCreate, types.EmbeddingUpdate](log, "EmbeddingHandler", svc),
	}
}
