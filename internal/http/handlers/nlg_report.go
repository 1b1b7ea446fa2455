package handlers

import (
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
	"github.com/safedrive/telematics-api/internal/types"
)

type NLGReportHandler struct {
	*CrudHandler[types.NLGReport, types.NLGReportCreate, types.NLGReportUpdate]
}

func NewNLGReportHandler(log *logger.Logger, svc services.NLGReportService) *NLGReportHandler {
	return &NLGReportHandler{
		CrudHandler: newCrudHandler[types.NLGReport, types.NLGReportCreate, types.NLGReportUpdate](log, "NLGReportHandler", svc),
	}
}
