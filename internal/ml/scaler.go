package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// StandardScaler re-applies the normalization the model was trained with:
// (x - mean) / scale per feature.
type StandardScaler struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// LoadScaler reads a fitted scaler from a JSON artifact.
func LoadScaler(path string) (*StandardScaler, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scaler StandardScaler
	if err := json.Unmarshal(payload, &scaler); err != nil {
		return nil, err
	}
	if len(scaler.Mean) == 0 {
		return nil, errors.New("scaler artifact has no features")
	}
	if len(scaler.Mean) != len(scaler.Scale) {
		return nil, fmt.Errorf("scaler mean/scale size mismatch: %d vs %d", len(scaler.Mean), len(scaler.Scale))
	}
	if len(scaler.FeatureNames) != len(scaler.Mean) {
		return nil, fmt.Errorf("scaler feature names/stats size mismatch: %d vs %d", len(scaler.FeatureNames), len(scaler.Mean))
	}
	for i, s := range scaler.Scale {
		if s == 0 {
			return nil, fmt.Errorf("scaler has zero scale for feature %q", scaler.FeatureNames[i])
		}
	}
	return &scaler, nil
}

// Transform normalizes a feature vector. The vector length must match
// the features the scaler was fitted on.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("feature vector has %d values, scaler expects %d", len(features), len(s.Mean))
	}
	scaled := make([]float64, len(features))
	for i, value := range features {
		scaled[i] = (value - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}
