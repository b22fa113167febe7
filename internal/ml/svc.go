package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// SVC is a binary support-vector classifier with an RBF kernel, exported
// from the training run as a JSON artifact.
type SVC struct {
	Kernel         string      `json:"kernel"`
	Gamma          float64     `json:"gamma"`
	Intercept      float64     `json:"intercept"`
	DualCoef       []float64   `json:"dual_coef"`
	SupportVectors [][]float64 `json:"support_vectors"`
	Classes        []int       `json:"classes"`
}

// LoadSVC reads a trained classifier from a JSON artifact.
func LoadSVC(path string) (*SVC, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var model SVC
	if err := json.Unmarshal(payload, &model); err != nil {
		return nil, err
	}

	if model.Kernel != "rbf" {
		return nil, fmt.Errorf("unsupported kernel %q", model.Kernel)
	}
	if model.Gamma <= 0 {
		return nil, errors.New("model gamma must be positive")
	}
	if len(model.SupportVectors) == 0 {
		return nil, errors.New("model has no support vectors")
	}
	if len(model.DualCoef) != len(model.SupportVectors) {
		return nil, fmt.Errorf("dual coefficients/support vectors size mismatch: %d vs %d",
			len(model.DualCoef), len(model.SupportVectors))
	}
	dims := len(model.SupportVectors[0])
	for i, sv := range model.SupportVectors {
		if len(sv) != dims {
			return nil, fmt.Errorf("support vector %d has %d values, expected %d", i, len(sv), dims)
		}
	}
	if len(model.Classes) != 2 {
		return nil, fmt.Errorf("expected a binary classifier, got %d classes", len(model.Classes))
	}
	return &model, nil
}

// Dims is the feature dimensionality the model was trained on.
func (m *SVC) Dims() int {
	return len(m.SupportVectors[0])
}

// Predict evaluates the decision function over an already-scaled feature
// vector and returns the winning class label.
func (m *SVC) Predict(features []float64) (int, error) {
	if len(features) != m.Dims() {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), m.Dims())
	}

	decision := m.Intercept
	for i, sv := range m.SupportVectors {
		decision += m.DualCoef[i] * math.Exp(-m.Gamma*squaredDistance(sv, features))
	}

	if decision > 0 {
		return m.Classes[1], nil
	}
	return m.Classes[0], nil
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
