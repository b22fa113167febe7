package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/thiagosnuness/sleep-backend/internal/models"
)

var ErrRecordNotFound = errors.New("prediction record not found")

// CreatePrediction inserts a new prediction record and fills in the
// identifier assigned by the database.
func CreatePrediction(record *models.PredictionRecord) error {
	stmt, err := db.Prepare(`
		INSERT INTO predictions(name, age, heart_rate, stress_level, physical_activity_level, sleep_duration, prediction_result, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	result, err := stmt.Exec(
		record.Name,
		record.Age,
		record.HeartRate,
		record.StressLevel,
		record.PhysicalActivityLevel,
		record.SleepDuration,
		record.PredictionResult,
		record.Timestamp.UTC().Format(models.TimestampLayout),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = int(id)
	return nil
}

// ListPredictions returns every stored record in insertion order.
func ListPredictions() ([]models.PredictionRecord, error) {
	query := `
		SELECT id, name, age, heart_rate, stress_level, physical_activity_level, sleep_duration, prediction_result, created_at
		FROM predictions
		ORDER BY id ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PredictionRecord
	for rows.Next() {
		record, err := scanPrediction(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetPredictionByID returns the record with the given id, or
// ErrRecordNotFound if no such row exists.
func GetPredictionByID(id int) (models.PredictionRecord, error) {
	row := db.QueryRow(`
		SELECT id, name, age, heart_rate, stress_level, physical_activity_level, sleep_duration, prediction_result, created_at
		FROM predictions
		WHERE id = ?
	`, id)

	record, err := scanPrediction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return record, ErrRecordNotFound
		}
		return record, err
	}
	return record, nil
}

// DeletePrediction removes the record with the given id. Deleting an id
// that does not exist reports ErrRecordNotFound.
func DeletePrediction(id int) error {
	result, err := db.Exec("DELETE FROM predictions WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func scanPrediction(scan func(dest ...any) error) (models.PredictionRecord, error) {
	var record models.PredictionRecord
	var createdAt time.Time // the driver decodes DATETIME columns into time.Time

	if err := scan(
		&record.ID,
		&record.Name,
		&record.Age,
		&record.HeartRate,
		&record.StressLevel,
		&record.PhysicalActivityLevel,
		&record.SleepDuration,
		&record.PredictionResult,
		&createdAt,
	); err != nil {
		return record, err
	}

	record.Timestamp = createdAt.UTC()
	return record, nil
}
