// Package ml loads the pre-trained sleep disorder classifier and its
// feature scaler and exposes a single prediction operation over them.
package ml

import "fmt"

// featureNames fixes the feature-vector order. It must match the column
// order the scaler and classifier were fitted with; reordering silently
// breaks predictions.
var featureNames = []string{
	"Age",
	"Heart Rate",
	"Stress Level",
	"Physical Activity Level",
	"Sleep Duration",
}

// FeatureNames returns the fixed feature order fed to the model.
func FeatureNames() []string {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return names
}

// Predictor pairs the loaded classifier and scaler. It is immutable after
// Load and safe to share across request handlers.
type Predictor struct {
	model  *SVC
	scaler *StandardScaler
}

// Load reads both artifacts and cross-checks their shapes against the
// fixed feature order. Any failure here is a startup configuration error;
// the caller must not serve predictions without a loaded Predictor.
func Load(modelPath, scalerPath string) (*Predictor, error) {
	model, err := LoadSVC(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	if len(scaler.Mean) != len(featureNames) {
		return nil, fmt.Errorf("scaler fitted on %d features, service assembles %d", len(scaler.Mean), len(featureNames))
	}
	if model.Dims() != len(featureNames) {
		return nil, fmt.Errorf("model trained on %d features, service assembles %d", model.Dims(), len(featureNames))
	}
	for i, name := range featureNames {
		if scaler.FeatureNames[i] != name {
			return nil, fmt.Errorf("scaler feature %d is %q, expected %q", i, scaler.FeatureNames[i], name)
		}
	}

	return &Predictor{model: model, scaler: scaler}, nil
}

// Predict assembles the feature vector in training order, scales it and
// returns the classifier's label: 0 for no disorder, 1 for disorder.
func (p *Predictor) Predict(age, heartRate, stressLevel, physicalActivityLevel int, sleepDuration float64) (int, error) {
	features := []float64{
		float64(age),
		float64(heartRate),
		float64(stressLevel),
		float64(physicalActivityLevel),
		sleepDuration,
	}

	scaled, err := p.scaler.Transform(features)
	if err != nil {
		return 0, err
	}
	return p.model.Predict(scaled)
}
