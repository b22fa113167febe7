package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/thiagosnuness/sleep-backend/internal/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	if err := InitDB(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("init db: %v", err)
	}
}

func sampleRecord() models.PredictionRecord {
	return models.PredictionRecord{
		Name:                  "Alice",
		Age:                   28,
		HeartRate:             85,
		StressLevel:           9,
		PhysicalActivityLevel: 45,
		SleepDuration:         6.0,
		PredictionResult:      1,
		Timestamp:             time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateAndGetPrediction(t *testing.T) {
	initTestDB(t)

	record := sampleRecord()
	if err := CreatePrediction(&record); err != nil {
		t.Fatalf("create: %v", err)
	}
	if record.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", record.ID)
	}

	stored, err := GetPredictionByID(record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ID != record.ID || stored.Name != record.Name || stored.Age != record.Age ||
		stored.HeartRate != record.HeartRate || stored.StressLevel != record.StressLevel ||
		stored.PhysicalActivityLevel != record.PhysicalActivityLevel ||
		stored.SleepDuration != record.SleepDuration ||
		stored.PredictionResult != record.PredictionResult {
		t.Fatalf("stored record differs:\n got %+v\nwant %+v", stored, record)
	}
	if !stored.Timestamp.Equal(record.Timestamp) {
		t.Fatalf("timestamp differs: got %v, want %v", stored.Timestamp, record.Timestamp)
	}
}

func TestIDsAreMonotonic(t *testing.T) {
	initTestDB(t)

	var lastID int
	for i := 0; i < 3; i++ {
		record := sampleRecord()
		if err := CreatePrediction(&record); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if record.ID <= lastID {
			t.Fatalf("id %d not greater than previous %d", record.ID, lastID)
		}
		lastID = record.ID
	}
}

func TestListPredictionsInsertionOrder(t *testing.T) {
	initTestDB(t)

	names := []string{"Alice", "Bob", "Carol"}
	for _, name := range names {
		record := sampleRecord()
		record.Name = name
		if err := CreatePrediction(&record); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	records, err := ListPredictions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != len(names) {
		t.Fatalf("expected %d records, got %d", len(names), len(records))
	}
	for i, name := range names {
		if records[i].Name != name {
			t.Fatalf("record %d: got %q, want %q", i, records[i].Name, name)
		}
		if i > 0 && records[i].ID <= records[i-1].ID {
			t.Fatalf("records not in ascending id order: %d after %d", records[i].ID, records[i-1].ID)
		}
	}
}

func TestGetPredictionNotFound(t *testing.T) {
	initTestDB(t)

	if _, err := GetPredictionByID(9999); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeletePrediction(t *testing.T) {
	initTestDB(t)

	record := sampleRecord()
	if err := CreatePrediction(&record); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := DeletePrediction(record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetPredictionByID(record.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("record still present after delete: %v", err)
	}
	// Deleting again reports not-found.
	if err := DeletePrediction(record.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on repeated delete, got %v", err)
	}
}

func TestDeletePredictionNotFound(t *testing.T) {
	initTestDB(t)

	if err := DeletePrediction(12345); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
