package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the wire and storage format for record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// PredictionRecord is one completed prediction: the submitted inputs,
// the derived label and the UTC creation time.
type PredictionRecord struct {
	ID                    int       `json:"id"`
	Name                  string    `json:"name"`
	Age                   int       `json:"age"`
	HeartRate             int       `json:"heart_rate"`
	StressLevel           int       `json:"stress_level"`
	PhysicalActivityLevel int       `json:"physical_activity_level"`
	SleepDuration         float64   `json:"sleep_duration"`
	PredictionResult      int       `json:"prediction_result"`
	Timestamp             time.Time `json:"-"`
}

// MarshalJSON renders the timestamp as "YYYY-MM-DD HH:MM:SS" in UTC.
func (r PredictionRecord) MarshalJSON() ([]byte, error) {
	type alias PredictionRecord
	return json.Marshal(struct {
		alias
		Timestamp string `json:"timestamp"`
	}{
		alias:     alias(r),
		Timestamp: r.Timestamp.UTC().Format(TimestampLayout),
	})
}
