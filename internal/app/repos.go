package app

import (
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
)

type Repos struct {
	DriverProfile   repos.DriverProfileRepo
	Trip            repos.TripRepo
	Location        repos.LocationRepo
	RawSensorData   repos.RawSensorDataRepo
	UnsafeBehaviour repos.UnsafeBehaviourRepo
	Cause           repos.CauseRepo
	DrivingTip      repos.DrivingTipRepo
	Embedding       repos.EmbeddingRepo
	AIModelInput    repos.AIModelInputRepo
	NLGReport       repos.NLGReportRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		DriverProfile:   repos.NewDriverProfileRepo(db, log),
		Trip:            repos.NewTripRepo(db, log),
		Location:        repos.NewLocationRepo(db, log),
		RawSensorData:   repos.NewRawSensorDataRepo(db, log),
		UnsafeBehaviour: repos.NewUnsafeBehaviourRepo(db, log),
		Cause:           repos.NewCauseRepo(db, log),
		DrivingTip:      repos.NewDrivingTipRepo(db, log),
		Embedding:       repos.NewEmbeddingRepo(db, log),
		AIModelInput:    repos.NewAIModelInputRepo(db, log),
		NLGReport:       repos.NewNLGReportRepo(db, log),
	}
}
