package app

import (
	"github.com/safedrive/telematics-api/internal/pkg/envutil"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

type Config struct {
	Port string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port: envutil.GetEnv("PORT", "8080", log),
	}
}
