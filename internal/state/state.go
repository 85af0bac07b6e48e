package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/banabyte/airwaves/internal/nowplaying"
)

const (
	appName      = "airwaves"
	dbFileName   = "airwaves.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *nowplaying.StationID
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at path, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveLastStation(m.db, *pending, time.Now())
	}

	return m.db.Close()
}

// LastStation returns the remembered station, or "" on first run.
func (m *Manager) LastStation() (nowplaying.StationID, error) {
	m.saveMu.Lock()
	pending := m.pending
	m.saveMu.Unlock()
	if pending != nil {
		return *pending, nil
	}
	return getLastStation(m.db)
}

// SaveLastStation remembers id. Writes are debounced so quick station
// hopping results in a single write.
func (m *Manager) SaveLastStation(id nowplaying.StationID) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &id

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveLastStation(m.db, *pending, time.Now())
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
