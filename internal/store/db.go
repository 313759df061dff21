// Package store persists application preferences (theme, window size) in a
// small SQLite database. Tab state is never stored here.
package store

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/justyntemme/chrometabs/internal/debug"
)

// Well-known setting keys
const (
	KeyTheme        = "theme"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

type EventType int

const (
	FetchSettings EventType = iota
	SaveSetting
	DeleteSetting
)

type Request struct {
	Op    EventType
	Key   string
	Value string
}

type Response struct {
	Op       EventType
	Settings map[string]string // Key-value settings
	Err      error
}

// DB serializes all database access through a single worker goroutine fed by
// RequestChan; every request answers with a full settings snapshot.
type DB struct {
	conn         *sql.DB
	RequestChan  chan Request
	ResponseChan chan Response
}

func NewDB() *DB {
	return &DB{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

// DefaultPath returns the settings database location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "chrometabs", "settings.db")
}

// Open initializes the database connection and schema
func (d *DB) Open(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	// WAL lets the UI read while the worker writes
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return err
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return err
	}

	settingsQuery := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(settingsQuery); err != nil {
		db.Close()
		return err
	}

	debug.Log(debug.STORE, "opened settings database %s", dbPath)
	d.conn = db
	return nil
}

// Start processes requests until RequestChan is closed
func (d *DB) Start() {
	for req := range d.RequestChan {
		if d.conn == nil {
			d.ResponseChan <- Response{Op: req.Op, Err: sql.ErrConnDone}
			continue
		}
		switch req.Op {
		case FetchSettings:
			d.handleFetchSettings()
		case SaveSetting:
			d.handleSaveSetting(req.Key, req.Value)
		case DeleteSetting:
			d.handleDeleteSetting(req.Key)
		}
	}
}

func (d *DB) handleFetchSettings() {
	d.ResponseChan <- d.snapshot(FetchSettings)
}

func (d *DB) snapshot(op EventType) Response {
	rows, err := d.conn.Query("SELECT key, value FROM settings")
	if err != nil {
		return Response{Op: op, Err: err}
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err == nil {
			settings[key] = value
		}
	}
	return Response{Op: op, Settings: settings, Err: rows.Err()}
}

func (d *DB) handleSaveSetting(key, value string) {
	_, err := d.conn.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		key, value)
	if err != nil {
		log.Printf("Store Error saving setting %s: %v", key, err)
		d.ResponseChan <- Response{Op: SaveSetting, Err: err}
		return
	}
	debug.Log(debug.STORE, "saved %s=%s", key, value)
	d.ResponseChan <- d.snapshot(SaveSetting)
}

func (d *DB) handleDeleteSetting(key string) {
	if _, err := d.conn.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		log.Printf("Store Error deleting setting %s: %v", key, err)
		d.ResponseChan <- Response{Op: DeleteSetting, Err: err}
		return
	}
	d.ResponseChan <- d.snapshot(DeleteSetting)
}

func (d *DB) Close() {
	if d.conn != nil {
		d.conn.Close()
	}
}
