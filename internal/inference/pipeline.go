package inference

import (
	"fmt"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

// NumFeatures is the arity of the model input: day_of_week_mean,
// hour_of_day_mean, acceleration_y_original_mean, course_std, speed_std,
// in that order.
const NumFeatures = 5

type Result struct {
	Label             int     `json:"label"`
	ProbabilityClass0 float64 `json:"probability_class_0"`
	ProbabilityClass1 float64 `json:"probability_class_1"`
	UnderInfluence    bool    `json:"under_influence"`
	Confidence        float64 `json:"confidence"`
}

// Pipeline bundles the fitted scaler and classifier. Both are immutable
// after Load and safe for concurrent use.
type Pipeline struct {
	log    *logger.Logger
	scaler *MinMaxScaler
	model  *Classifier
}

// Load reads both artifacts and fails fast when either is missing or
// malformed; callers must not serve predictions without a Pipeline.
func Load(cfg Config, log *logger.Logger) (*Pipeline, error) {
	scaler, err := LoadScaler(cfg.ScalerPath)
	if err != nil {
		return nil, apierr.Internal("classifier artifacts unavailable", err)
	}
	model, err := LoadClassifier(cfg.ModelPath)
	if err != nil {
		return nil, apierr.Internal("classifier artifacts unavailable", err)
	}
	if scaler.NumFeatures() != len(model.Coef) {
		return nil, apierr.Internal(
			fmt.Sprintf("scaler (%d features) and model (%d weights) disagree", scaler.NumFeatures(), len(model.Coef)), nil)
	}
	log.Info("Classifier artifacts loaded",
		"scaler_path", cfg.ScalerPath,
		"model_path", cfg.ModelPath,
		"features", scaler.NumFeatures(),
	)
	return &Pipeline{log: log, scaler: scaler, model: model}, nil
}

func (p *Pipeline) FeatureNames() []string { return p.scaler.FeatureNames }

// Normalize exposes the scaled feature vector, mainly for demo output.
func (p *Pipeline) Normalize(raw []float64) ([]float64, error) {
	return p.scaler.Transform(raw)
}

func (p *Pipeline) Classify(dayOfWeekMean, hourOfDayMean, accelYMean, courseStd, speedStd float64) (*Result, error) {
	return p.ClassifyVector([]float64{dayOfWeekMean, hourOfDayMean, accelYMean, courseStd, speedStd})
}

func (p *Pipeline) ClassifyVector(raw []float64) (*Result, error) {
	if len(raw) != NumFeatures {
		return nil, apierr.Validation(
			fmt.Sprintf("expected %d features, got %d", NumFeatures, len(raw)), nil)
	}
	scaled, err := p.scaler.Transform(raw)
	if err != nil {
		return nil, apierr.Validation(err.Error(), err)
	}
	f, err := p.model.DecisionValue(scaled)
	if err != nil {
		return nil, apierr.Internal("decision function failed", err)
	}
	p1 := p.model.ProbabilityImpaired(f)
	p0 := 1 - p1

	label := 0
	confidence := p0
	if p1 >= 0.5 {
		label = 1
		confidence = p1
	}
	return &Result{
		Label:             label,
		ProbabilityClass0: p0,
		ProbabilityClass1: p1,
		UnderInfluence:    label == 1,
		Confidence:        confidence,
	}, nil
}
