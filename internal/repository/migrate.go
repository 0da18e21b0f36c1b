package repository

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Migrate applies the goose migrations found in dir to the postgres database.
func Migrate(cfg DBConfig, dir string) error {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}

// Open builds the storage for the named backend.
func Open(backend string, pg DBConfig, sqlitePath string) (*Storage, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryStorage(), nil
	case BackendPostgres:
		return NewPostgresStorage(pg)
	case BackendSQLite:
		return NewSQLiteStorage(sqlitePath)
	default:
		return nil, errors.New("unknown storage backend: " + backend)
	}
}
