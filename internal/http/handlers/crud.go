package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safedrive/telematics-api/internal/http/response"
	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
)

// CrudHandler binds the uniform CRUD surface of one entity onto gin. T, C
// and U mirror the service's record, create and update payload types.
type CrudHandler[T, C, U any] struct {
	log *logger.Logger
	svc services.CrudService[T, C, U]
}

func newCrudHandler[T, C, U any](log *logger.Logger, name string, svc services.CrudService[T, C, U]) *CrudHandler[T, C, U] {
	return &CrudHandler[T, C, U]{
		log: log.With("handler", name),
		svc: svc,
	}
}

func (h *CrudHandler[T, C, U]) Create(c *gin.Context) {
	var in C
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		respondServiceError(c, h.log, "Create", err)
		return
	}
	response.RespondCreated(c, rec)
}

func (h *CrudHandler[T, C, U]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "Get", err)
		return
	}
	response.RespondOK(c, rec)
}

func (h *CrudHandler[T, C, U]) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", services.DefaultListLimit)
	if !ok {
		return
	}
	recs, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondServiceError(c, h.log, "List", err)
		return
	}
	response.RespondOK(c, recs)
}

func (h *CrudHandler[T, C, U]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in U
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		respondServiceError(c, h.log, "Update", err)
		return
	}
	response.RespondOK(c, rec)
}

// Delete returns the state the row had just before removal.
func (h *CrudHandler[T, C, U]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "Delete", err)
		return
	}
	response.RespondOK(c, rec)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_query_param", err)
		return 0, false
	}
	return v, true
}

func respondServiceError(c *gin.Context, log *logger.Logger, op string, err error) {
	e := apierr.Wrap(err, op)
	if e.Kind == apierr.KindInternal || e.Kind == apierr.KindUnavailable {
		log.Error(op+" failed", "error", err, "path", c.Request.URL.Path)
	}
	response.RespondError(c, e.Status(), string(e.Kind), e)
}
