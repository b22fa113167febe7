package ml

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestScalerTransform(t *testing.T) {
	scaler := &StandardScaler{
		FeatureNames: []string{"a", "b"},
		Mean:         []float64{10, 20},
		Scale:        []float64{2, 5},
	}

	scaled, err := scaler.Transform([]float64{14, 10})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	want := []float64{2, -2}
	for i := range want {
		if math.Abs(scaled[i]-want[i]) > 1e-9 {
			t.Fatalf("feature %d: got %f, want %f", i, scaled[i], want[i])
		}
	}
}

func TestScalerTransformWrongLength(t *testing.T) {
	scaler := &StandardScaler{
		FeatureNames: []string{"a", "b"},
		Mean:         []float64{0, 0},
		Scale:        []float64{1, 1},
	}
	if _, err := scaler.Transform([]float64{1}); err == nil {
		t.Fatal("expected error for wrong vector length")
	}
}

func TestLoadScalerRejectsMalformedArtifact(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"mismatched_stats": `{"feature_names": ["a"], "mean": [0], "scale": [1, 2]}`,
		"zero_scale":       `{"feature_names": ["a"], "mean": [0], "scale": [0]}`,
		"empty":            `{"feature_names": [], "mean": [], "scale": []}`,
		"not_json":         `not json`,
	}
	for name, payload := range cases {
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := LoadScaler(path); err == nil {
			t.Fatalf("%s: expected load error", name)
		}
	}
}

func TestLoadSVCRejectsMalformedArtifact(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"wrong_kernel":  `{"kernel": "linear", "gamma": 1, "dual_coef": [1], "support_vectors": [[0]], "classes": [0, 1]}`,
		"coef_mismatch": `{"kernel": "rbf", "gamma": 1, "dual_coef": [1, 2], "support_vectors": [[0]], "classes": [0, 1]}`,
		"not_binary":    `{"kernel": "rbf", "gamma": 1, "dual_coef": [1], "support_vectors": [[0]], "classes": [0, 1, 2]}`,
		"no_vectors":    `{"kernel": "rbf", "gamma": 1, "dual_coef": [], "support_vectors": [], "classes": [0, 1]}`,
	}
	for name, payload := range cases {
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := LoadSVC(path); err == nil {
			t.Fatalf("%s: expected load error", name)
		}
	}
}
