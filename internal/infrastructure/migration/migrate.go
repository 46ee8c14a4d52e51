package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrator is the slice of migrate.Migrate this package relies on.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// Engine builds a Migrator for an open database. Injectable so tests do not
// have to touch a real database.
type Engine func(db *sql.DB) (Migrator, error)

type Migration struct {
	db     *sql.DB
	engine Engine
}

func NewMigration(db *sql.DB, engine Engine) *Migration {
	return &Migration{
		db:     db,
		engine: engine,
	}
}

// DefaultEngine wires the embedded SQL files to the sqlite driver.
func DefaultEngine(db *sql.DB) (Migrator, error) {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("init sqlite migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, "sqlite3", driver)
}

// Up applies every pending migration. Migrations are additive only: they
// create missing tables and indexes and never drop existing ones, so an
// already-current database is a no-op.
func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.db)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if uerr := m.Up(); uerr != nil && !errors.Is(uerr, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", uerr)
	}
	return nil
}
