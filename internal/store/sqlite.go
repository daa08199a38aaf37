package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-ident-keeper/internal/config"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/migrations"
)

// DB wraps the SQLite connection together with the file guard protecting the
// database files on disk. Repository writes take the guard shared; the backup
// exporter takes it exclusive for the duration of the byte copy only.
type DB struct {
	*sql.DB

	path      string
	fileGuard sync.RWMutex

	logger *logger.Logger
}

func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		path:   cfg.DSN,
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Path returns the on-disk location of the database file.
func (db *DB) Path() string {
	return db.path
}

// WithFileGuard runs fn while holding the file guard shared. Repository
// writes go through here so they exclude an in-flight backup copy but not
// each other.
func (db *DB) WithFileGuard(fn func() error) error {
	db.fileGuard.RLock()
	defer db.fileGuard.RUnlock()
	return fn()
}

// ExclusiveFileAccess runs fn with the file guard held exclusively, passing
// the database file path and the write-ahead-log path (empty string when no
// WAL file exists). The guard is held only for the duration of fn; callers
// must keep fn bounded to the copy itself.
func (db *DB) ExclusiveFileAccess(fn func(dbPath, walPath string) error) error {
	db.fileGuard.Lock()
	defer db.fileGuard.Unlock()

	walPath := db.path + "-wal"
	if _, err := os.Stat(walPath); err != nil {
		walPath = ""
	}

	return fn(db.path, walPath)
}
