package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/banabyte/airwaves/internal/db"
	"github.com/banabyte/airwaves/internal/nowplaying"
)

func getLastStation(db *sql.DB) (nowplaying.StationID, error) {
	var id sql.NullString
	err := db.QueryRow(`SELECT last_station_id FROM station_state WHERE id = 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return nowplaying.StationID(dbutil.NullStringValue(id)), nil
}

func saveLastStation(db *sql.DB, id nowplaying.StationID, now time.Time) error {
	_, err := db.Exec(`
		INSERT INTO station_state (id, last_station_id, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_station_id = excluded.last_station_id,
			updated_at = excluded.updated_at
	`, string(id), now.Unix())
	return err
}
