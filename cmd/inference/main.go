package main

import (
	"fmt"
	"os"

	"github.com/safedrive/telematics-api/internal/inference"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

type demoTrip struct {
	name     string
	features []float64
}

// The five trips exercise the classifier across its input range: a typical
// afternoon drive, a calm weekday trip, a late-night drive with erratic
// steering and speed, the all-zero vector and the scaler maxima.
var demoTrips = []demoTrip{
	{"typical weekend afternoon", []float64{5.5, 13.08, 0.207, 6.33, 5.09}},
	{"calm weekday trip", []float64{0, 14.4, 0.066, 6.09, 5.06}},
	{"late night, erratic course and speed", []float64{5, 22.5, 3.5, 85, 25}},
	{"all-zero features", []float64{0, 0, 0, 0, 0}},
	{"training maxima", []float64{6, 23, 9.76, 153.48, 127.7}},
}

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := inference.LoadConfig(log)
	pipeline, err := inference.Load(cfg, log)
	if err != nil {
		log.Error("Classifier load failed", "error", err)
		os.Exit(1)
	}

	names := pipeline.FeatureNames()
	for _, trip := range demoTrips {
		res, err := pipeline.ClassifyVector(trip.features)
		if err != nil {
			log.Error("Classification failed", "trip", trip.name, "error", err)
			os.Exit(1)
		}
		scaled, err := pipeline.Normalize(trip.features)
		if err != nil {
			log.Error("Normalization failed", "trip", trip.name, "error", err)
			os.Exit(1)
		}

		fmt.Printf("=== %s ===\n", trip.name)
		for i, name := range names {
			fmt.Printf("  %-30s raw=%9.3f  scaled=%7.4f\n", name, trip.features[i], scaled[i])
		}
		verdict := "not under influence"
		if res.UnderInfluence {
			verdict = "under influence"
		}
		fmt.Printf("  prediction: %s (label %d)\n", verdict, res.Label)
		fmt.Printf("  P(sober)=%.6f  P(impaired)=%.6f\n", res.ProbabilityClass0, res.ProbabilityClass1)
		fmt.Printf("  risk: %s  (confidence %.4f)\n\n", inference.RiskTier(res.ProbabilityClass1), res.Confidence)
	}
}
