package inference

import (
	"encoding/json"
	"fmt"
	"os"
)

// MinMaxScaler holds the bounds fitted on the training set. Transform maps
// each raw feature onto [0, 1] relative to those bounds; values outside the
// training range land outside [0, 1] and are passed through as-is.
type MinMaxScaler struct {
	FeatureNames []string  `json:"feature_names"`
	Min          []float64 `json:"min"`
	Max          []float64 `json:"max"`
}

func LoadScaler(path string) (*MinMaxScaler, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler artifact: %w", err)
	}
	var s MinMaxScaler
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode scaler artifact %s: %w", path, err)
	}
	if len(s.Min) == 0 || len(s.Min) != len(s.Max) {
		return nil, fmt.Errorf("scaler artifact %s: bounds are malformed", path)
	}
	return &s, nil
}

func (s *MinMaxScaler) NumFeatures() int { return len(s.Min) }

func (s *MinMaxScaler) Transform(raw []float64) ([]float64, error) {
	if len(raw) != len(s.Min) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Min), len(raw))
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		span := s.Max[i] - s.Min[i]
		if span == 0 {
			out[i] = 0
			continue
		}
		out[i] = (v - s.Min[i]) / span
	}
	return out, nil
}
