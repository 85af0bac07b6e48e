package state

import (
	"context"
	"database/sql"

	dbutil "github.com/banabyte/airwaves/internal/db"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	return dbutil.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS station_state (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				last_station_id TEXT,
				updated_at INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS player_state (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				volume REAL NOT NULL DEFAULT 0.25,
				muted INTEGER NOT NULL DEFAULT 0
			);
		`)
		if err != nil {
			return err
		}

		// Set initial version if not exists
		_, err = tx.Exec(`
			INSERT OR IGNORE INTO schema_version (version) VALUES (?)
		`, currentSchemaVersion)
		return err
	})
}
