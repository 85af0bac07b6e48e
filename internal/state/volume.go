package state

import (
	"database/sql"
	"errors"
)

// VolumeState represents the saved volume state.
type VolumeState struct {
	Volume float64
	Muted  bool
}

// GetVolume returns the saved volume state, or nil if none was saved.
func (m *Manager) GetVolume() (*VolumeState, error) {
	return getVolume(m.db)
}

// SaveVolume persists the volume level to the database.
func (m *Manager) SaveVolume(volume float64, muted bool) error {
	return saveVolume(m.db, volume, muted)
}

func getVolume(db *sql.DB) (*VolumeState, error) {
	var state VolumeState

	row := db.QueryRow(`SELECT volume, muted FROM player_state WHERE id = 1`)
	err := row.Scan(&state.Volume, &state.Muted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved volume is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &state, nil
}

func saveVolume(db *sql.DB, volume float64, muted bool) error {
	_, err := db.Exec(`
		INSERT INTO player_state (id, volume, muted)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted
	`, volume, muted)
	return err
}
