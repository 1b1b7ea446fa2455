package app

import (
	httpH "github.com/safedrive/telematics-api/internal/http/handlers"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

type Handlers struct {
	DriverProfile   *httpH.DriverProfileHandler
	Trip            *httpH.TripHandler
	Location        *httpH.LocationHandler
	RawSensorData   *httpH.RawSensorDataHandler
	UnsafeBehaviour *httpH.UnsafeBehaviourHandler
	Cause           *httpH.CauseHandler
	DrivingTip      *httpH.DrivingTipHandler
	Embedding       *httpH.EmbeddingHandler
	AIModelInput    *httpH.AIModelInputHandler
	NLGReport       *httpH.NLGReportHandler
	Health          *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		DriverProfile:   httpH.NewDriverProfileHandler(log, s.DriverProfile),
		Trip:            httpH.NewTripHandler(log, s.Trip),
		Location:        httpH.NewLocationHandler(log, s.Location),
		RawSensorData:   httpH.NewRawSensorDataHandler(log, s.RawSensorData),
		UnsafeBehaviour: httpH.NewUnsafeBehaviourHandler(log, s.UnsafeBehaviour),
		Cause:           httpH.NewCauseHandler(log, s.Cause),
		DrivingTip:      httpH.NewDrivingTipHandler(log, s.DrivingTip),
		Embedding:       httpH.NewEmbeddingHandler(log, s.Embedding),
		AIModelInput:    httpH.NewAIModelInputHandler(log, s.AIModelInput),
		NLGReport:       httpH.NewNLGReportHandler(log, s.NLGReport),
		Health:          httpH.NewHealthHandler(),
	}
}
