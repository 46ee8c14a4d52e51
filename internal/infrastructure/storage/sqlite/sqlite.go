package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"darak/internal/infrastructure/migration"
)

// ErrUnavailable means the environment cannot provide persistence at all.
// Callers are expected to keep running against an empty read-only view and
// show the underlying error text to the user.
var ErrUnavailable = errors.New("storage unavailable")

// Storage is the handle every repository takes as a dependency. Open returns
// it immediately; the database is opened and migrated behind the handle, and
// each operation first blocks on Await so nothing touches the schema before
// it is ready.
type Storage struct {
	path   string
	log    *slog.Logger
	engine migration.Engine

	ready   chan struct{}
	db      *sql.DB
	initErr error
}

// Open starts initialization and returns the handle without waiting for it.
func Open(path string, log *slog.Logger) *Storage {
	return OpenWithEngine(path, log, migration.DefaultEngine)
}

func OpenWithEngine(path string, log *slog.Logger, engine migration.Engine) *Storage {
	s := &Storage{
		path:   path,
		log:    log.With("component", "sqlite"),
		engine: engine,
		ready:  make(chan struct{}),
	}

	go s.init()

	return s
}

func (s *Storage) init() {
	defer close(s.ready)

	db, err := s.open()
	if err != nil {
		s.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		s.log.Error("storage initialization failed", "path", s.path, "error", err)
		return
	}

	s.db = db
	s.log.Info("storage ready", "path", s.path)
}

func (s *Storage) open() (*sql.DB, error) {
	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", s.path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps writes applied in issue order.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migration.NewMigration(db, s.engine).Up(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

// Await blocks until initialization finishes and returns the database, or
// the initialization error, or the context error if the caller gives up.
func (s *Storage) Await(ctx context.Context) (*sql.DB, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.ready:
	}

	if s.initErr != nil {
		return nil, s.initErr
	}
	return s.db, nil
}

// Err reports the initialization error without blocking, or nil while
// initialization is still in flight.
func (s *Storage) Err() error {
	select {
	case <-s.ready:
		return s.initErr
	default:
		return nil
	}
}

func (s *Storage) Close() error {
	<-s.ready
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
