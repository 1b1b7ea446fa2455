package inference

import (
	"math"
	"testing"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

func loadTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	p, err := Load(Config{
		ScalerPath: "testdata/feature_scaler.json",
		ModelPath:  "testdata/svm_classifier.json",
	}, log)
	if err != nil {
		t.Fatalf("load pipeline: %v", err)
	}
	return p
}

func TestClassifyProbabilitiesSumToOne(t *testing.T) {
	p := loadTestPipeline(t)

	vectors := [][]float64{
		{5.5, 13.08, 0.207, 6.33, 5.09},
		{0, 14.4, 0.066, 6.09, 5.06},
		{5, 22.5, 3.5, 85, 25},
		{0, 0, 0, 0, 0},
		{6, 23, 9.76, 153.48, 127.7},
	}
	for _, raw := range vectors {
		res, err := p.ClassifyVector(raw)
		if err != nil {
			t.Fatalf("ClassifyVector(%v): %v", raw, err)
		}
		sum := res.ProbabilityClass0 + res.ProbabilityClass1
		if math.Abs(sum-1) > 1e-6 {
			t.Fatalf("probabilities sum to %v, want 1", sum)
		}
		if res.ProbabilityClass1 < 0 || res.ProbabilityClass1 > 1 {
			t.Fatalf("probability out of range: %v", res.ProbabilityClass1)
		}
	}
}

func TestClassifyLabelMatchesProbability(t *testing.T) {
	p := loadTestPipeline(t)

	vectors := [][]float64{
		{5.5, 13.08, 0.207, 6.33, 5.09},
		{5, 22.5, 3.5, 85, 25},
		{6, 23, 9.76, 153.48, 127.7},
	}
	for _, raw := range vectors {
		res, err := p.ClassifyVector(raw)
		if err != nil {
			t.Fatalf("ClassifyVector(%v): %v", raw, err)
		}
		wantLabel := 0
		if res.ProbabilityClass1 >= 0.5 {
			wantLabel = 1
		}
		if res.Label != wantLabel {
			t.Fatalf("label %d disagrees with P(impaired)=%v", res.Label, res.ProbabilityClass1)
		}
		if res.UnderInfluence != (res.Label == 1) {
			t.Fatalf("under_influence %v disagrees with label %d", res.UnderInfluence, res.Label)
		}
		wantConf := res.ProbabilityClass0
		if res.Label == 1 {
			wantConf = res.ProbabilityClass1
		}
		if res.Confidence != wantConf {
			t.Fatalf("confidence %v, want %v", res.Confidence, wantConf)
		}
	}
}

func TestClassifySoberTrip(t *testing.T) {
	p := loadTestPipeline(t)

	res, err := p.Classify(5.5, 13.08, 0.207, 6.33, 5.09)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Label != 0 || res.UnderInfluence {
		t.Fatalf("typical afternoon trip classified as impaired: %+v", res)
	}
	if got := RiskTier(res.ProbabilityClass1); got != "Very Low" {
		t.Fatalf("risk tier %q, want Very Low", got)
	}
}

func TestClassifyLateNightHighVariation(t *testing.T) {
	p := loadTestPipeline(t)

	res, err := p.Classify(5, 22.5, 3.5, 85, 25)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Label != 1 || !res.UnderInfluence {
		t.Fatalf("late-night high-variation trip classified as sober: %+v", res)
	}
	if got := RiskTier(res.ProbabilityClass1); got != "Very High" {
		t.Fatalf("risk tier %q, want Very High", got)
	}
}

func TestClassifyZeroVector(t *testing.T) {
	p := loadTestPipeline(t)

	res, err := p.ClassifyVector([]float64{0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("ClassifyVector: %v", err)
	}
	if res.Label != 0 {
		t.Fatalf("zero vector classified as impaired: %+v", res)
	}
}

func TestClassifyWrongArity(t *testing.T) {
	p := loadTestPipeline(t)

	for _, raw := range [][]float64{nil, {1, 2, 3}, {1, 2, 3, 4, 5, 6}} {
		if _, err := p.ClassifyVector(raw); !apierr.IsKind(err, apierr.KindValidation) {
			t.Fatalf("ClassifyVector(%v) err = %v, want validation error", raw, err)
		}
	}
}

func TestClassifyFeatureOrderMatters(t *testing.T) {
	p := loadTestPipeline(t)

	raw := []float64{5, 22.5, 3.5, 85, 25}
	base, err := p.ClassifyVector(raw)
	if err != nil {
		t.Fatalf("ClassifyVector: %v", err)
	}

	swapped := []float64{22.5, 5, 3.5, 85, 25}
	other, err := p.ClassifyVector(swapped)
	if err != nil {
		t.Fatalf("ClassifyVector(swapped): %v", err)
	}
	if base.ProbabilityClass1 == other.ProbabilityClass1 {
		t.Fatalf("swapping features left P(impaired) unchanged at %v", base.ProbabilityClass1)
	}
}

func TestLoadMissingArtifacts(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	if _, err := Load(Config{
		ScalerPath: "testdata/nope.json",
		ModelPath:  "testdata/svm_classifier.json",
	}, log); !apierr.IsKind(err, apierr.KindInternal) {
		t.Fatalf("missing scaler: err = %v, want internal error", err)
	}
	if _, err := Load(Config{
		ScalerPath: "testdata/feature_scaler.json",
		ModelPath:  "testdata/nope.json",
	}, log); !apierr.IsKind(err, apierr.KindInternal) {
		t.Fatalf("missing model: err = %v, want internal error", err)
	}
}

func TestScalerTransform(t *testing.T) {
	s := &MinMaxScaler{
		Min: []float64{0, 10, 3},
		Max: []float64{6, 20, 3},
	}

	out, err := s.Transform([]float64{3, 15, 3})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if out[0] != 0.5 || out[1] != 0.5 {
		t.Fatalf("Transform = %v, want [0.5 0.5 0]", out)
	}
	if out[2] != 0 {
		t.Fatalf("degenerate bound should scale to 0, got %v", out[2])
	}

	if _, err := s.Transform([]float64{1, 2}); err == nil {
		t.Fatal("Transform accepted wrong arity")
	}
}

func TestRiskTierThresholds(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{0.0, "Very Low"},
		{0.19, "Very Low"},
		{0.2, "Low"},
		{0.39, "Low"},
		{0.4, "Medium"},
		{0.59, "Medium"},
		{0.6, "High"},
		{0.79, "High"},
		{0.8, "Very High"},
		{1.0, "Very High"},
	}
	for _, tc := range cases {
		if got := RiskTier(tc.p); got != tc.want {
			t.Fatalf("RiskTier(%v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}
