package inference

import (
	"github.com/safedrive/telematics-api/internal/pkg/envutil"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

type Config struct {
	ScalerPath string
	ModelPath  string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		ScalerPath: envutil.GetEnv("SCALER_PATH", "models/feature_scaler.json", log),
		ModelPath:  envutil.GetEnv("MODEL_PATH", "models/svm_classifier.json", log),
	}
}
