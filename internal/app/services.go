package app

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/services"
)

type Services struct {
	DriverProfile   services.DriverProfileService
	Trip            services.TripService
	Location        services.LocationService
	RawSensorData   services.RawSensorDataService
	UnsafeBehaviour services.UnsafeBehaviourService
	Cause           services.CauseService
	DrivingTip      services.DrivingTipService
	Embedding       services.EmbeddingService
	AIModelInput    services.AIModelInputService
	NLGReport       services.NLGReportService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		DriverProfile:   services.NewDriverProfileService(db, log, r.DriverProfile),
		Trip:            services.NewTripService(db, log, r.Trip, r.DriverProfile),
		Location:        services.NewLocationService(db, log, r.Location),
		RawSensorData:   services.NewRawSensorDataService(db, log, r.RawSensorData, r.Location, r.Trip),
		UnsafeBehaviour: services.NewUnsafeBehaviourService(db, log, r.UnsafeBehaviour, r.Trip, r.DriverProfile, r.Location),
		Cause:           services.NewCauseService(db, log, r.Cause, r.UnsafeBehaviour),
		DrivingTip:      services.NewDrivingTipService(db, log, r.DrivingTip, r.DriverProfile),
		Embedding:       services.NewEmbeddingService(db, log, r.Embedding),
		AIModelInput:    services.NewAIModelInputService(db, log, r.AIModelInput, r.Trip),
		NLGReport:       services.NewNLGReportService(db, log, r.NLGReport, r.DriverProfile),
	}
}
