package inference

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Classifier is the portable form of the trained impairment model: a linear
// SVM over scaled features plus the Platt coefficients fitted alongside it.
type Classifier struct {
	Kernel    string    `json:"kernel"`
	Classes   []int     `json:"classes"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	ProbA     float64   `json:"prob_a"`
	ProbB     float64   `json:"prob_b"`
}

func LoadClassifier(path string) (*Classifier, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var m Classifier
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	if m.Kernel != "linear" {
		return nil, fmt.Errorf("model artifact %s: unsupported kernel %q", path, m.Kernel)
	}
	if len(m.Coef) == 0 {
		return nil, fmt.Errorf("model artifact %s: empty weight vector", path)
	}
	if len(m.Classes) != 2 {
		return nil, fmt.Errorf("model artifact %s: expected 2 classes, got %d", path, len(m.Classes))
	}
	return &m, nil
}

// DecisionValue is the signed distance from the separating hyperplane in
// scaled feature space.
func (m *Classifier) DecisionValue(scaled []float64) (float64, error) {
	if len(scaled) != len(m.Coef) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.Coef), len(scaled))
	}
	f := m.Intercept
	for i, v := range scaled {
		f += m.Coef[i] * v
	}
	return f, nil
}

// ProbabilityImpaired applies the Platt calibration to a decision value.
func (m *Classifier) ProbabilityImpaired(f float64) float64 {
	return 1.0 / (1.0 + math.Exp(m.ProbA*f+m.ProbB))
}
