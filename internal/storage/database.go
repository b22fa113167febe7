package storage

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the SQLite database at path and creates the predictions
// table if it does not exist yet.
func InitDB(path string) error {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}

	createPredictionsTable := `
	CREATE TABLE IF NOT EXISTS predictions (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"age" INTEGER NOT NULL,
			"heart_rate" INTEGER NOT NULL,
			"stress_level" INTEGER NOT NULL,
			"physical_activity_level" INTEGER NOT NULL,
			"sleep_duration" REAL NOT NULL,
			"prediction_result" INTEGER NOT NULL,
			"created_at" DATETIME NOT NULL
	);`

	if _, err := db.Exec(createPredictionsTable); err != nil {
		return err
	}
	return nil
}
