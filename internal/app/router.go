package app

import (
	apihttp "github.com/safedrive/telematics-api/internal/http"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

func wireServer(log *logger.Logger, h Handlers) *apihttp.Server {
	return apihttp.NewServer(apihttp.RouterConfig{
		Log: log,

		DriverProfileHandler:   h.DriverProfile,
		TripHandler:            h.Trip,
		LocationHandler:        h.Location,
		RawSensorDataHandler:   h.RawSensorData,
		UnsafeBehaviourHandler: h.UnsafeBehaviour,
		CauseHandler:           h.Cause,
		DrivingTipHandler:      h.DrivingTip,
		EmbeddingHandler:       h.Embedding,
		AIModelInputHandler:    h.AIModelInput,
		NLGReportHandler:       h.NLGReport,

		HealthHandler: h.Health,
	})
}
