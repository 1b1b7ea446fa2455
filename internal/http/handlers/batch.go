package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safedrive/telematics-api/internal/http/response"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
)

// BatchHandler exposes the transactional bulk endpoints for entities that
// ship in volume from devices.
type BatchHandler[C any] struct {
	log *logger.Logger
	svc services.BatchService[C]
}

func newBatchHandler[C any](log *logger.Logger, name string, svc services.BatchService[C]) *BatchHandler[C] {
	return &BatchHandler[C]{
		log: log.With("handler", name),
		svc: svc,
	}
}

func (h *BatchHandler[C]) BatchCreate(c *gin.Context) {
	var in []*C
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	n, err := h.svc.BatchCreate(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, "BatchCreate", err)
		return
	}
	response.RespondCreated(c, gin.H{"created": n})
}

func (h *BatchHandler[C]) BatchDelete(c *gin.Context) {
	var ids []uuid.UUID
	if err := c.ShouldBindJSON(&ids); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	n, err := h.svc.BatchDelete(c.Request.Context(), ids)
	if err != nil {
		respondServiceError(c, h.log, "BatchDelete", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": n})
}
